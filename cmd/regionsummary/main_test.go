package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumyai/bgctable/internal/config"
)

const regionGbk = `LOCUS       scaffold_3             12 bp    DNA     linear   UNK 01-JAN-1980
FEATURES             Location/Qualifiers
     region          1..12
                     /region_number="1"
                     /product="terpene"
     protocluster    1..12
                     /protocluster_number="1"
                     /product="terpene"
     CDS             2..10
                     /locus_tag="s3_1"
ORIGIN
        1 atgcatgcat gc
//
`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvInputDir, config.EnvRegionsOut, config.EnvCandClustersOut,
		config.EnvProtoclustersOut, config.EnvSQLite, config.EnvLogLevel,
	} {
		t.Setenv(key, "")
	}
}

// chdir runs the test from a fresh working directory.
func chdir(t *testing.T) string {
	t.Helper()
	origWD, err := os.Getwd()
	require.NoError(t, err)
	workdir := t.TempDir()
	require.NoError(t, os.Chdir(workdir))
	t.Cleanup(func() {
		_ = os.Chdir(origWD)
	})
	return workdir
}

func TestRunDefaults(t *testing.T) {
	clearEnv(t)
	workdir := chdir(t)

	require.NoError(t, os.Mkdir(filepath.Join(workdir, "LU_1kb"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(workdir, "LU_1kb", "scaffold_3.region001.gbk"), []byte(regionGbk), 0o644))

	var stdout bytes.Buffer
	err := run(context.Background(), nil, &stdout)

	require.NoError(t, err)
	assert.Equal(t,
		"Dataframes saved to 'regions_summary.csv', 'cand_clusters_summary.csv', and 'protoclusters_summary.csv'.\n",
		stdout.String())

	regions, err := os.ReadFile(filepath.Join(workdir, "regions_summary.csv"))
	require.NoError(t, err)
	assert.Equal(t,
		"contig_id,start,end,length,num_cds,gc_content,product,on_contig_edge,name\n"+
			"scaffold_3,0,12,13,1,0.5,terpene,False,1\n",
		string(regions))

	for _, name := range []string{"cand_clusters_summary.csv", "protoclusters_summary.csv"} {
		_, err := os.Stat(filepath.Join(workdir, name))
		assert.NoError(t, err, name)
	}
}

func TestRunFlags(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "antismash")
	require.NoError(t, os.Mkdir(in, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(in, "scaffold_3.region001.gbk"), []byte(regionGbk), 0o644))

	args := []string{
		"--input-dir", in,
		"--regions-out", filepath.Join(dir, "r.csv"),
		"--cand-clusters-out", filepath.Join(dir, "c.csv"),
		"--protoclusters-out", filepath.Join(dir, "p.csv"),
		"--sqlite", filepath.Join(dir, "bgc.db"),
	}

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), args, &stdout))

	for _, name := range []string{"r.csv", "c.csv", "p.csv", "bgc.db"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRunDotEnvAndFlagPrecedence(t *testing.T) {
	clearEnv(t)
	workdir := chdir(t)
	t.Cleanup(func() { _ = os.Unsetenv(config.EnvRegionsOut) })

	require.NoError(t, os.Mkdir(filepath.Join(workdir, "LU_1kb"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(workdir, "LU_1kb", "scaffold_3.region001.gbk"), []byte(regionGbk), 0o644))

	// godotenv only fills variables that are unset.
	require.NoError(t, os.Unsetenv(config.EnvRegionsOut))
	require.NoError(t, os.WriteFile(filepath.Join(workdir, ".env"),
		[]byte("BGC_REGIONS_OUT=env_regions.csv\nBGC_CAND_CLUSTERS_OUT=env_cand.csv\n"), 0o644))

	var stdout bytes.Buffer
	err := run(context.Background(), []string{"--cand-clusters-out", "flag_cand.csv"}, &stdout)

	require.NoError(t, err)
	assert.Equal(t,
		"Dataframes saved to 'env_regions.csv', 'flag_cand.csv', and 'protoclusters_summary.csv'.\n",
		stdout.String())
	for _, name := range []string{"env_regions.csv", "flag_cand.csv", "protoclusters_summary.csv"} {
		_, err := os.Stat(filepath.Join(workdir, name))
		assert.NoError(t, err, name)
	}
}

func TestRunEnvOverridesDefault(t *testing.T) {
	clearEnv(t)
	workdir := chdir(t)
	t.Setenv(config.EnvInputDir, filepath.Join(workdir, "missing"))

	var stdout bytes.Buffer
	err := run(context.Background(), nil, &stdout)

	assert.True(t, errors.Is(err, config.ErrInputDirMissing), "got %v", err)
	_, statErr := os.Stat(filepath.Join(workdir, "regions_summary.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

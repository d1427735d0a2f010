package eda_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"

	"churneda/pkg/data"
	"churneda/pkg/eda"
	"churneda/pkg/plots"
	"churneda/pkg/stats"
)

const churnCSV = `customerID,tenure,MonthlyCharges,TotalCharges,Contract,Churn
7590-VHVEG,1,29.85,29.85,Month-to-month,No
5575-GNVDE,34,56.95,1889.5,One year,No
3668-QPYBK,2,53.85,108.15,Month-to-month,Yes
7795-CFOCW,45,42.3,1840.75,One year,No
9237-HQITU,2,70.7,151.65,Month-to-month,Yes
9305-CDSKC,8,99.65,820.5,Month-to-month,Yes
1452-KIOVK,22,89.1,1949.4,Month-to-month,No
6713-OKOMC,10,29.75,301.9,Month-to-month,No
7892-POOKP,28,104.8,3046.05,Month-to-month,Yes
4472-LVYGI,0,52.55, ,Two year,No
`

func setup(t *testing.T, body string) (billy.Filesystem, eda.Config) {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "data.csv", []byte(body), 0644))
	cfg := eda.DefaultConfig()
	cfg.OutDir = "out"
	return fs, cfg
}

func TestRun(t *testing.T) {
	fs, cfg := setup(t, churnCSV)
	var stdout bytes.Buffer

	require.NoError(t, eda.Run(cfg, fs, &stdout, zerolog.Nop()))

	for _, name := range []string{plots.RelationalFile, plots.CategoricalFile, plots.StatisticalFile} {
		info, err := fs.Stat(fs.Join("out", name))
		require.NoError(t, err, name)
		assert.NotZero(t, info.Size(), name)
	}

	out := stdout.String()
	assert.Contains(t, out, "For the attribute 'MonthlyCharges':\n")
	assert.Contains(t, out, "Mean = 62.95, Standard Deviation = 27.27,")
	assert.Contains(t, out, "The data is not skewed and mesokurtic.\n")
	assert.Contains(t, out, "MonthlyCharges: N 10")

	// The report follows the diagnostics.
	assert.Greater(t, strings.Index(out, "For the attribute"), strings.Index(out, "7590-VHVEG"))
}

func TestRun_OtherColumn(t *testing.T) {
	fs, cfg := setup(t, churnCSV)
	cfg.Column = "TotalCharges"
	var stdout bytes.Buffer

	require.NoError(t, eda.Run(cfg, fs, &stdout, zerolog.Nop()))
	assert.Contains(t, stdout.String(), "For the attribute 'TotalCharges':\n")
}

func TestRun_MissingInput(t *testing.T) {
	fs := memfs.New()
	err := eda.Run(eda.DefaultConfig(), fs, &bytes.Buffer{}, zerolog.Nop())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_MissingSchemaColumn(t *testing.T) {
	fs, cfg := setup(t, "MonthlyCharges,TotalCharges,Churn\n20,20,No\n30,60,Yes\n")
	err := eda.Run(cfg, fs, &bytes.Buffer{}, zerolog.Nop())
	require.ErrorIs(t, err, data.ErrMissingColumn)
	assert.Contains(t, err.Error(), "Contract")

	_, statErr := fs.Stat(fs.Join("out", plots.RelationalFile))
	assert.True(t, os.IsNotExist(statErr), "nothing is plotted before validation passes")
}

func TestRun_UnknownColumn(t *testing.T) {
	fs, cfg := setup(t, churnCSV)
	cfg.Column = "Nope"
	err := eda.Run(cfg, fs, &bytes.Buffer{}, zerolog.Nop())
	assert.ErrorIs(t, err, data.ErrMissingColumn)
}

func TestRun_TextColumn(t *testing.T) {
	fs, cfg := setup(t, churnCSV)
	cfg.Column = "Contract"
	var stdout bytes.Buffer
	err := eda.Run(cfg, fs, &stdout, zerolog.Nop())
	assert.ErrorIs(t, err, stats.ErrNotNumeric)
	assert.NotContains(t, stdout.String(), "For the attribute")
}

func TestRun_HeaderOnly(t *testing.T) {
	fs, cfg := setup(t, "customerID,MonthlyCharges,TotalCharges,Contract,Churn\n")
	err := eda.Run(cfg, fs, &bytes.Buffer{}, zerolog.Nop())
	assert.ErrorIs(t, err, data.ErrNoRows)
}

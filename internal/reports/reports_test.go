package reports

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() table {
	return table{
		Title:   "User Statistics",
		Headers: []string{"Role", "Count"},
		Rows: [][]string{
			{"patient", "12"},
			{"psychiatrist", "3"},
			{"Total", "15"},
		},
	}
}

func TestRenderPDF(t *testing.T) {
	b, err := renderPDF(sampleTable())
	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "expected a PDF header")
}

func TestRenderExcel(t *testing.T) {
	b, err := renderExcel(sampleTable())
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "User Statistics", title)

	header, err := f.GetCellValue("Sheet1", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Role", header)

	total, err := f.GetCellValue("Sheet1", "B6")
	require.NoError(t, err)
	assert.Equal(t, "15", total)
}

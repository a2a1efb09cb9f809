package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	s := Sheet{
		Name:   SheetEquipment,
		Header: []string{"Crew", "Level", "Rare Tricorder"},
		Rows: [][]string{
			{"James T. Kirk", "30", "1"},
			{"Worf, Son of Mogh", "40", "0"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, s))

	assert.Equal(t, "Crew,Level,Rare Tricorder\nJames T. Kirk,30,1\n\"Worf, Son of Mogh\",40,0\n", buf.String())
}

func TestWriteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sheets := []Sheet{
		{Name: SheetCrew, Header: []string{"Name"}, Rows: [][]string{{"Kirk"}}},
		{Name: SheetEquipment, Header: []string{"Crew", "Level", "Craft cost"}},
	}

	paths, err := WriteDir(dir, sheets)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "crew.csv"), filepath.Join(dir, "equipment.csv")}, paths)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "Name\nKirk\n", string(data))

	data, err = os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "Crew,Level,Craft cost\n", string(data))
}

func TestWriteDir_BadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := WriteDir(filepath.Join(file, "sub"), []Sheet{{Name: SheetCrew}})
	assert.Error(t, err)
}

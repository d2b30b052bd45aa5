package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hola mundo\n"), "¿Nombre?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hola mundo", got)
	assert.Contains(t, out.String(), "¿Nombre?")
}

func TestGetSimpleText_EOFKeepsPartialLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("última"), "¿Nombre?", &out)
	require.NoError(t, err)
	assert.Equal(t, "última", got)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	got, err := GetInt(rdr("7\n"), "Cupo", 5, &out)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	got, err = GetInt(rdr("\n"), "Cupo", 5, &out)
	require.NoError(t, err)
	assert.Equal(t, 5, got, "empty line falls back to the default")

	_, err = GetInt(rdr("siete\n"), "Cupo", 5, &out)
	require.Error(t, err)
}

func TestGetConfirm(t *testing.T) {
	var out bytes.Buffer

	tests := []struct {
		in   string
		want bool
	}{
		{"s\n", true},
		{"si\n", true},
		{"Sí\n", true},
		{"y\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
	}
	for _, tc := range tests {
		got, err := GetConfirm(rdr(tc.in), "¿Seguro?", &out)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Descripción", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestGetList(t *testing.T) {
	var out bytes.Buffer
	got, err := GetList(rdr("Cálculo, Física ,  ,Química\n"), "Materias", &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cálculo", "Física", "Química"}, got)

	got, err = GetList(rdr("\n"), "Materias", &out)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}

	var out bytes.Buffer
	_, err := GetPassword(&out, "Contraseña")
	require.Error(t, err)
}

func TestGetPassword_Stubbed(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return []byte("secreto"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Contraseña")
	require.NoError(t, err)
	assert.Equal(t, []byte("secreto"), pw)
	assert.Contains(t, out.String(), "Contraseña")
}

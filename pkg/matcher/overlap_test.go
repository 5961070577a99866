package matcher

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name      string
		applicant []string
		job       []string
		want      float64
	}{
		{"two of three", []string{"go", "sql"}, []string{"go", "sql", "docker"}, 66.67},
		{"full overlap", []string{"go", "sql", "extra"}, []string{"go", "sql"}, 100},
		{"no overlap", []string{"java"}, []string{"go"}, 0},
		{"empty job skills", []string{"go"}, nil, 0},
		{"empty applicant skills", nil, []string{"go"}, 0},
		{"case sensitive", []string{"Go"}, []string{"go"}, 0},
		{"duplicates count once", []string{"go", "go"}, []string{"go", "go", "sql"}, 50},
		{"blank entries ignored", []string{"go", ""}, []string{"go", ""}, 100},
		{"one of three", []string{"a"}, []string{"a", "b", "c"}, 33.33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.applicant, tt.job))
		})
	}
}

func TestPercentageOrderInsensitive(t *testing.T) {
	a := []string{"docker", "go", "sql"}
	j := []string{"kafka", "go", "sql", "redis"}
	want := Percentage(a, j)
	assert.Equal(t, want, Percentage([]string{"sql", "go", "docker"}, []string{"redis", "sql", "kafka", "go"}))
	assert.Equal(t, 50.0, want)
}

func TestPercentageFullOnlyForSubset(t *testing.T) {
	job := make([]string, 0, 20001)
	for i := 0; i < 20001; i++ {
		job = append(job, fmt.Sprintf("skill-%d", i))
	}
	// 20000 of 20001 rounds to 100.00 without clamping
	got := Percentage(job[:20000], job)
	assert.Less(t, got, 100.0)
	assert.Equal(t, 100.0, Percentage(job, job))
	// a tiny overlap rounds down like any other value
	assert.Equal(t, 0.0, Percentage(job[:1], job))
}

func TestSplit(t *testing.T) {
	matched, missing := Split([]string{"sql", "go"}, []string{"go", "docker", "sql", "go", ""})
	assert.Equal(t, []string{"go", "sql"}, matched)
	assert.Equal(t, []string{"docker"}, missing)

	matched, missing = Split(nil, nil)
	assert.NotNil(t, matched)
	assert.NotNil(t, missing)
	assert.Empty(t, matched)
	assert.Empty(t, missing)
}

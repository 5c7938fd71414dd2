package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStockBatchPolicy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    StockBatchPolicy
		wantErr bool
	}{
		{name: "sequential", input: "sequential", want: StockBatchSequential},
		{name: "atomic", input: "atomic", want: StockBatchAtomic},
		{name: "empty defaults to sequential", input: "", want: StockBatchSequential},
		{name: "unknown", input: "eventual", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStockBatchPolicy(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileUpload_IsEmpty(t *testing.T) {
	var nilUpload *FileUpload
	assert.True(t, nilUpload.IsEmpty())
	assert.Equal(t, int64(0), nilUpload.Size())

	assert.True(t, (&FileUpload{Filename: "a.png"}).IsEmpty())

	upload := &FileUpload{Filename: "a.png", Content: []byte{1, 2, 3}}
	assert.False(t, upload.IsEmpty())
	assert.Equal(t, int64(3), upload.Size())
}

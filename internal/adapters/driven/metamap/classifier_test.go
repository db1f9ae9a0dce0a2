package metamap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStdoutClassifier tests the ERROR substring heuristic
func TestStdoutClassifier(t *testing.T) {
	tests := []struct {
		name    string
		stdout  string
		wantMsg string
		failed  bool
	}{
		{
			name:   "clean run",
			stdout: "processing 2 records\ndone\n",
			failed: false,
		},
		{
			name:    "error is right-trimmed",
			stdout:  "ERROR: no match \n",
			wantMsg: "ERROR: no match",
			failed:  true,
		},
		{
			name:    "error mid-stream",
			stdout:  "processing\nERROR: lexicon unavailable\n",
			wantMsg: "processing\nERROR: lexicon unavailable",
			failed:  true,
		},
		{
			name:   "lowercase error is not a signature",
			stdout: "error tolerance set to 0\n",
			failed: false,
		},
		{
			name:   "empty stdout",
			stdout: "",
			failed: false,
		},
	}

	c := NewStdoutClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, failed := c.Classify([]byte(tt.stdout))
			assert.Equal(t, tt.failed, failed)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

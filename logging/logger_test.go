package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	t.Run("requires a tag", func(t *testing.T) {
		l, err := New("", "", nil)
		assert.Error(t, err)
		assert.Nil(t, l)
	})

	t.Run("writes tagged, leveled lines", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", "\033[32m", &buf)
		assert.NoError(t, err)

		l.Info("starting up")
		l.Error("something broke")

		assert.Contains(t, buf.String(), "[APP]")
		assert.Contains(t, buf.String(), "[INFO] starting up")
		assert.Contains(t, buf.String(), "[ERROR] something broke")
	})
}

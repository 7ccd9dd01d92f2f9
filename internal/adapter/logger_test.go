package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("quiet mode discards everything", func(t *testing.T) {
		log := NewLogger(false)
		assert.NotNil(t, log)

		assert.NotPanics(t, func() {
			log.Debugw("pool built", "chord", "C7", "size", 8)
		})
	})

	t.Run("verbose mode builds a working logger", func(t *testing.T) {
		log := NewLogger(true)
		assert.NotNil(t, log)

		assert.NotPanics(t, func() {
			log.Debugw("pool built", "chord", "C7", "size", 8)
		})
	})
}

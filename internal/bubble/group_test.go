package bubble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHideAvatars(t *testing.T) {
	msgs := []Message{
		{User: friend},
		{User: friend},
		{User: me},
		{User: me},
		{User: friend},
		{User: friend},
		{User: friend},
	}

	assert.Equal(t,
		[]bool{false, true, false, true, false, true, true},
		HideAvatars(msgs),
	)
	assert.Empty(t, HideAvatars(nil))
}

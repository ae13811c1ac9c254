package soundboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kobeSmallman/mobileSoundboard/internal/audio"
	"github.com/kobeSmallman/mobileSoundboard/internal/mocks"
)

func TestLazyPlayer_RetriesAfterFailedOpen(t *testing.T) {
	handle := mocks.NewMockPlaybackHandle(t)
	player := mocks.NewMockPlayer(t)
	player.EXPECT().Load(mock.Anything, mock.Anything).Return(handle, nil).Twice()

	noDevice := errors.New("no output device")
	opens := 0
	l := &lazyPlayer{open: func() (audio.Player, error) {
		opens++
		if opens == 1 {
			return nil, noDevice
		}
		return player, nil
	}}
	src := audio.Source{Name: "Sound1.wav"}

	_, err := l.Load(t.Context(), src)
	require.ErrorIs(t, err, noDevice)

	got, err := l.Load(t.Context(), src)
	require.NoError(t, err)
	assert.Same(t, handle, got)

	_, err = l.Load(t.Context(), src)
	require.NoError(t, err)
	assert.Equal(t, 2, opens, "an opened player is reused")
}

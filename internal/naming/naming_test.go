package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uitext-generator/internal/diagnostic"
)

func TestIdentifier(t *testing.T) {
	legacy := Options{Marker: "s_", CapitalizeFirst: false}
	literal := Options{Marker: "s", CapitalizeFirst: false}

	tests := []struct {
		key      string
		opts     Options
		expected string
	}{
		{key: "MAIN_MENU_TITLE", opts: DefaultOptions(), expected: "sMainMenuTitle"},
		{key: "OK", opts: DefaultOptions(), expected: "sOk"},
		{key: "GREETING", opts: DefaultOptions(), expected: "sGreeting"},
		{key: "A_B_C", opts: DefaultOptions(), expected: "sABC"},
		{key: "A_B_C", opts: literal, expected: "saBC"},
		{key: "MAIN_MENU_TITLE", opts: legacy, expected: "s_mainMenuTitle"},
		{key: "MOVE_COMMAND_HELP_EXAMPLE_CHESS_LIKE_VIEW", opts: legacy, expected: "s_moveCommandHelpExampleChessLikeView"},
		{key: "PLAYER_2_WINS", opts: DefaultOptions(), expected: "sPlayer2Wins"},
		{key: "PLAYER_2ND_TURN", opts: DefaultOptions(), expected: "sPlayer2ndTurn"},
		{key: "X2Y_A1B", opts: DefaultOptions(), expected: "sX2yA1b"},
		{key: "A_1B", opts: literal, expected: "sa1b"},
		{key: "main_menu", opts: DefaultOptions(), expected: "sMainMenu"},
		{key: "MAIN__MENU", opts: DefaultOptions(), expected: "sMainMenu"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Identifier(tt.key, tt.opts))
			// Derivation is pure.
			assert.Equal(t, Identifier(tt.key, tt.opts), Identifier(tt.key, tt.opts))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("sMainMenuTitle"))
	assert.True(t, Valid("s_mainMenuTitle"))
	assert.True(t, Valid("_x1"))

	assert.False(t, Valid(""))
	assert.False(t, Valid("1st"))
	assert.False(t, Valid("sMenu-title"))
	assert.False(t, Valid("sMenu title"))
	assert.False(t, Valid("sÉcran"))
	assert.False(t, Valid("s__x"))
}

func TestAssign(t *testing.T) {
	ids, err := Assign([]string{"MAIN_MENU_TITLE", "OK", "GREETING"}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"sMainMenuTitle", "sOk", "sGreeting"}, ids)

	ids, err = Assign(nil, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestAssign_Errors(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		opts   Options
		key    string
		target error
	}{
		{
			name:   "collision",
			keys:   []string{"MAIN_MENU", "OK", "MAIN__MENU"},
			opts:   DefaultOptions(),
			key:    "MAIN__MENU",
			target: ErrCollision,
		},
		{
			name:   "collision by case",
			keys:   []string{"MAIN_MENU", "main_menu"},
			opts:   DefaultOptions(),
			key:    "main_menu",
			target: ErrCollision,
		},
		{
			name:   "invalid character",
			keys:   []string{"MENU-TITLE"},
			opts:   DefaultOptions(),
			key:    "MENU-TITLE",
			target: ErrInvalidIdentifier,
		},
		{
			name:   "leading digit without marker",
			keys:   []string{"2ND_PLAYER"},
			opts:   Options{},
			key:    "2ND_PLAYER",
			target: ErrInvalidIdentifier,
		},
		{
			name:   "empty key",
			keys:   []string{"OK", ""},
			opts:   DefaultOptions(),
			key:    "",
			target: ErrEmptyKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := Assign(tt.keys, tt.opts)
			require.Error(t, err)
			assert.Nil(t, ids)
			assert.ErrorIs(t, err, tt.target)

			var de *diagnostic.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, diagnostic.KindIdentifier, de.Kind)
			assert.Equal(t, tt.key, de.Key)
		})
	}
}

func TestAssign_CollisionMessageNamesBothKeys(t *testing.T) {
	_, err := Assign([]string{"MAIN_MENU", "MAIN__MENU"}, DefaultOptions())
	require.Error(t, err)
	assert.Equal(t,
		`identifier error: entry "MAIN__MENU": identifier collision: "sMainMenu" is also derived from "MAIN_MENU"`,
		err.Error())
}

package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "valid", input: "Buy milk", want: "Buy milk"},
		{name: "trims surrounding whitespace", input: "  Buy milk  ", want: "Buy milk"},
		{name: "empty", input: "", wantErr: "todo description is required"},
		{name: "whitespace only", input: "   ", wantErr: "todo description cannot be empty or only whitespace"},
		{name: "too long", input: strings.Repeat("a", 201), wantErr: "todo description must be no more than 200 characters long"},
		{name: "max length ok", input: strings.Repeat("a", 200), want: strings.Repeat("a", 200)},
		{name: "multibyte characters counted as characters", input: strings.Repeat("é", 150), want: strings.Repeat("é", 150)},
		{name: "multibyte at max length ok", input: strings.Repeat("é", 200), want: strings.Repeat("é", 200)},
		{name: "multibyte too long", input: strings.Repeat("é", 201), wantErr: "todo description must be no more than 200 characters long"},
		{name: "long input trimmed under limit", input: " " + strings.Repeat("a", 200) + " ", want: strings.Repeat("a", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateDescription(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmptyAndWhitespaceDescriptionsFailDifferently(t *testing.T) {
	_, emptyErr := ValidateDescription("")
	_, blankErr := ValidateDescription("   ")
	require.Error(t, emptyErr)
	require.Error(t, blankErr)
	assert.NotEqual(t, emptyErr.Error(), blankErr.Error())
}

func TestNewTask(t *testing.T) {
	task, err := NewTask("  Buy milk  ", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Description)
	assert.Equal(t, "user-1", task.UserID)
	assert.False(t, task.Completed)

	_, err = NewTask("", "user-1")
	assert.Error(t, err)
}

func TestToggleCompletion(t *testing.T) {
	task := &Task{Description: "Buy milk"}

	task.ToggleCompletion()
	assert.True(t, task.Completed)

	task.ToggleCompletion()
	assert.False(t, task.Completed)
}

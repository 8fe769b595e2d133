package safecall_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/safecall"
)

func TestOutcome_Variants(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		outcome := safecall.Success(payload{Message: "ok"})

		assert.Equal(t, safecall.StatusSuccess, outcome.Status())
		assert.True(t, outcome.IsSuccess())
		assert.False(t, outcome.IsExpectedFailure())
		assert.False(t, outcome.IsUnexpectedFailure())
		assert.Equal(t, payload{Message: "ok"}, outcome.Data())
		assert.Empty(t, outcome.Message())
	})

	t.Run("expected failure", func(t *testing.T) {
		outcome := safecall.ExpectedFailure[payload]("Not Found")

		assert.Equal(t, safecall.StatusExpectedFailure, outcome.Status())
		assert.False(t, outcome.IsSuccess())
		assert.True(t, outcome.IsExpectedFailure())
		assert.False(t, outcome.IsUnexpectedFailure())
		assert.Zero(t, outcome.Data())
		assert.Equal(t, "Not Found", outcome.Message())
	})

	t.Run("unexpected failure", func(t *testing.T) {
		outcome := safecall.UnexpectedFailure[payload]()

		assert.Equal(t, safecall.StatusUnexpectedFailure, outcome.Status())
		assert.False(t, outcome.IsSuccess())
		assert.False(t, outcome.IsExpectedFailure())
		assert.True(t, outcome.IsUnexpectedFailure())
		assert.Zero(t, outcome.Data())
		assert.Equal(t, safecall.GenericFailureMessage, outcome.Message())
	})
}

func TestOutcome_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		outcome safecall.Outcome[payload]
		want    string
	}{
		{
			name:    "success serializes data",
			outcome: safecall.Success(payload{Message: "ok"}),
			want:    `{"status":"SUCCESS","data":{"message":"ok"}}`,
		},
		{
			name:    "expected failure serializes message only",
			outcome: safecall.ExpectedFailure[payload]("Not Found"),
			want:    `{"status":"EXPECTED_FAILURE","message":"Not Found"}`,
		},
		{
			name:    "unexpected failure serializes the generic message",
			outcome: safecall.UnexpectedFailure[payload](),
			want:    `{"status":"UNEXPECTED_FAILURE","message":"An unexpected error occurred"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.outcome)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

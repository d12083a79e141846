package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/zerr"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(seconds int) domain.Timestamp {
	return domain.StampAt(epoch.Add(time.Duration(seconds) * time.Second))
}

func TestTimestamp_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Timestamp
		want int
	}{
		{"absent equals absent", domain.Absent(), domain.Absent(), 0},
		{"absent before present", domain.Absent(), at(0), -1},
		{"present after absent", at(0), domain.Absent(), 1},
		{"earlier before later", at(1), at(2), -1},
		{"equal instants", at(3), at(3), 0},
		{"later after earlier", at(5), at(4), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestLatestAndEarliest(t *testing.T) {
	assert.False(t, domain.Latest(nil).Present(), "no inputs is the floor")
	assert.False(t, domain.Earliest(nil).Present(), "no outputs is the floor")

	stamps := []domain.Timestamp{at(4), at(1), at(9)}
	assert.Equal(t, at(9), domain.Latest(stamps))
	assert.Equal(t, at(1), domain.Earliest(stamps))

	withMissing := []domain.Timestamp{at(4), domain.Absent()}
	assert.Equal(t, at(4), domain.Latest(withMissing))
	assert.False(t, domain.Earliest(withMissing).Present(), "a missing output dominates")
}

func TestWindow_Stale(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []domain.Timestamp
		outputs []domain.Timestamp
		stale   bool
	}{
		{"outputs newer than inputs", []domain.Timestamp{at(1)}, []domain.Timestamp{at(2)}, false},
		{"input newer than output", []domain.Timestamp{at(3)}, []domain.Timestamp{at(2)}, true},
		{"equal times are stale", []domain.Timestamp{at(2)}, []domain.Timestamp{at(2)}, true},
		{"missing output is stale", []domain.Timestamp{at(1)}, []domain.Timestamp{at(5), domain.Absent()}, true},
		{"no inputs with existing outputs", nil, []domain.Timestamp{at(1)}, false},
		{"no inputs with missing output", nil, []domain.Timestamp{domain.Absent()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.stale, domain.NewWindow(tt.inputs, tt.outputs).Stale())
		})
	}
}

func TestTimestamp_Require(t *testing.T) {
	require.NoError(t, at(0).Require(domain.NewInternedString("a.txt"), "input of task"))

	err := domain.Absent().Require(domain.NewInternedString("a.txt"), "input of task")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingPath))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "a.txt", zErr.Metadata()["path"])
	assert.Equal(t, "input of task", zErr.Message())
}

func TestTimestamp_String(t *testing.T) {
	assert.Equal(t, "absent", domain.Absent().String())
	assert.Equal(t, "2024-01-01T12:00:00Z", at(0).String())
}

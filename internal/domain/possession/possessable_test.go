package possession_test

import (
	"testing"

	"github.com/KirkDiggler/possess/internal/domain/possession"
	mockpossession "github.com/KirkDiggler/possess/internal/domain/possession/mock"
	"github.com/KirkDiggler/possess/internal/domain/world"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type stubObject struct {
	destroyed bool
}

func (o *stubObject) ID() string                 { return "stub" }
func (o *stubObject) Transform() world.Transform { return world.NewBody("stub", world.Vector3{}) }
func (o *stubObject) Destroyed() bool            { return o.destroyed }

func TestType_String(t *testing.T) {
	assert.Equal(t, "Primary", possession.TypePrimary.String())
	assert.Equal(t, "Secondary", possession.TypeSecondary.String())
	assert.Equal(t, "Unknown", possession.Type(5).String())
}

func TestParseType(t *testing.T) {
	tests := []struct {
		name   string
		want   possession.Type
		wantOK bool
	}{
		{name: "", want: possession.TypePrimary, wantOK: true},
		{name: "primary", want: possession.TypePrimary, wantOK: true},
		{name: "Secondary", want: possession.TypeSecondary, wantOK: true},
		{name: "tertiary", want: possession.TypePrimary, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := possession.ParseType(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAs(t *testing.T) {
	ctrl := gomock.NewController(t)

	live := mockpossession.NewMockPossessable(ctrl)
	live.EXPECT().GameObject().Return(&stubObject{}).AnyTimes()

	destroyed := mockpossession.NewMockPossessable(ctrl)
	destroyed.EXPECT().GameObject().Return(&stubObject{destroyed: true}).AnyTimes()

	provider := mockpossession.NewMockProvider(ctrl)
	provider.EXPECT().Possessable().Return(live, true).AnyTimes()

	emptyProvider := mockpossession.NewMockProvider(ctrl)
	emptyProvider.EXPECT().Possessable().Return(nil, false).AnyTimes()

	tests := []struct {
		name     string
		obj      any
		expected possession.Possessable
		ok       bool
	}{
		{name: "nil object", obj: nil, ok: false},
		{name: "plain value", obj: "wall", ok: false},
		{name: "possessable", obj: live, expected: live, ok: true},
		{name: "destroyed possessable", obj: destroyed, ok: false},
		{name: "provider with component", obj: provider, expected: live, ok: true},
		{name: "provider without component", obj: emptyProvider, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := possession.As(tt.obj)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Same(t, tt.expected, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestIsStale(t *testing.T) {
	ctrl := gomock.NewController(t)

	assert.True(t, possession.IsStale(nil))

	orphan := mockpossession.NewMockPossessable(ctrl)
	orphan.EXPECT().GameObject().Return(nil)
	assert.True(t, possession.IsStale(orphan))

	live := mockpossession.NewMockPossessable(ctrl)
	live.EXPECT().GameObject().Return(&stubObject{})
	assert.False(t, possession.IsStale(live))
}

func TestContains(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mockpossession.NewMockPossessable(ctrl)
	b := mockpossession.NewMockPossessable(ctrl)

	assert.True(t, possession.Contains([]possession.Possessable{a, b}, b))
	assert.False(t, possession.Contains([]possession.Possessable{a}, b))
	assert.False(t, possession.Contains(nil, a))
}

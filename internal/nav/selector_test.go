package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectorStartsAtHome(t *testing.T) {
	assert.Equal(t, Home, NewSelector().Active())
}

func TestSelectThenActive(t *testing.T) {
	for _, d := range Destinations() {
		t.Run(d.String(), func(t *testing.T) {
			s := NewSelector()
			s.Select(d)
			assert.Equal(t, d, s.Active())
		})
	}
}

func TestSelectLastWriteWins(t *testing.T) {
	s := NewSelector()
	s.Select(Calendar)
	s.Select(Profile)
	assert.Equal(t, Profile, s.Active())
}

func TestSelectActiveIsIdempotent(t *testing.T) {
	s := NewSelector()
	s.Select(Home)
	assert.Equal(t, Home, s.Active())

	s.Select(Courses)
	s.Select(Courses)
	assert.Equal(t, Courses, s.Active())
}

func TestSelectScenario(t *testing.T) {
	s := NewSelector()
	require.Equal(t, Home, s.Active())
	s.Select(Courses)
	require.Equal(t, Courses, s.Active())
	s.Select(Profile)
	require.Equal(t, Profile, s.Active())
}

func TestSubscribeReceivesChanges(t *testing.T) {
	s := NewSelector()
	var got []Change
	s.Subscribe(func(c Change) { got = append(got, c) })

	s.Select(Courses)
	s.Select(Courses)
	s.Select(Home)

	assert.Equal(t, []Change{
		{From: Home, To: Courses},
		{From: Courses, To: Courses},
		{From: Courses, To: Home},
	}, got)
}

func TestObserversRunInRegistrationOrder(t *testing.T) {
	s := NewSelector()
	var order []string
	s.Subscribe(func(Change) { order = append(order, "first") })
	s.Subscribe(func(Change) { order = append(order, "second") })

	s.Select(Calendar)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestObserverSeesNewActive(t *testing.T) {
	s := NewSelector()
	var seen Destination
	s.Subscribe(func(Change) { seen = s.Active() })
	s.Select(Profile)
	assert.Equal(t, Profile, seen)
}

func TestUnsubscribe(t *testing.T) {
	s := NewSelector()
	calls := 0
	unsubscribe := s.Subscribe(func(Change) { calls++ })

	s.Select(Courses)
	unsubscribe()
	unsubscribe()
	s.Select(Calendar)

	assert.Equal(t, 1, calls)
	assert.Equal(t, Calendar, s.Active())
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	s := NewSelector()
	var unsubscribe func()
	firstCalls, secondCalls := 0, 0
	unsubscribe = s.Subscribe(func(Change) {
		firstCalls++
		unsubscribe()
	})
	s.Subscribe(func(Change) { secondCalls++ })

	s.Select(Courses)
	s.Select(Calendar)

	assert.Equal(t, 1, firstCalls)
	assert.Equal(t, 2, secondCalls)
}

package mansion_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahcohcat/detective-quest/internal/mansion"
)

// threeRooms is an entrance with two leaf children, each holding a clue.
func threeRooms() *mansion.Blueprint {
	return &mansion.Blueprint{
		Entrance: "hall",
		Rooms: []mansion.RoomSpec{
			{ID: "hall", Name: "Entrance Hall"},
			{ID: "library", Name: "Library", Clue: "a torn page", Suspect: "Colonel Mostarda"},
			{ID: "kitchen", Name: "Kitchen", Clue: "a missing knife", Suspect: "Dona Violeta"},
		},
		Edges: []mansion.Edge{
			{Parent: "hall", Direction: mansion.DirLeft, Child: "library"},
			{Parent: "hall", Direction: mansion.DirRight, Child: "kitchen"},
		},
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(bp *mansion.Blueprint)
		wantErr error
	}{
		{
			name:    "no rooms",
			mutate:  func(bp *mansion.Blueprint) { bp.Rooms = nil },
			wantErr: mansion.ErrNoRooms,
		},
		{
			name:    "empty room id",
			mutate:  func(bp *mansion.Blueprint) { bp.Rooms[1].ID = "" },
			wantErr: mansion.ErrEmptyRoomID,
		},
		{
			name:    "empty room name",
			mutate:  func(bp *mansion.Blueprint) { bp.Rooms[2].Name = "" },
			wantErr: mansion.ErrEmptyRoomName,
		},
		{
			name:    "duplicate room id",
			mutate:  func(bp *mansion.Blueprint) { bp.Rooms[2].ID = "library" },
			wantErr: mansion.ErrDuplicateRoom,
		},
		{
			name:    "unknown edge parent",
			mutate:  func(bp *mansion.Blueprint) { bp.Edges[0].Parent = "attic" },
			wantErr: mansion.ErrUnknownRoom,
		},
		{
			name:    "unknown edge child",
			mutate:  func(bp *mansion.Blueprint) { bp.Edges[1].Child = "attic" },
			wantErr: mansion.ErrUnknownRoom,
		},
		{
			name:    "invalid direction",
			mutate:  func(bp *mansion.Blueprint) { bp.Edges[0].Direction = "up" },
			wantErr: mansion.ErrBadDirection,
		},
		{
			name: "child slot wired twice",
			mutate: func(bp *mansion.Blueprint) {
				bp.Edges[1] = mansion.Edge{Parent: "hall", Direction: mansion.DirLeft, Child: "kitchen"}
			},
			wantErr: mansion.ErrSlotTaken,
		},
		{
			name: "room wired under two parents",
			mutate: func(bp *mansion.Blueprint) {
				bp.Edges = append(bp.Edges, mansion.Edge{Parent: "library", Direction: mansion.DirLeft, Child: "kitchen"})
			},
			wantErr: mansion.ErrRewiredChild,
		},
		{
			name:    "entrance missing",
			mutate:  func(bp *mansion.Blueprint) { bp.Entrance = "attic" },
			wantErr: mansion.ErrBadEntrance,
		},
		{
			name:    "entrance is somebody's child",
			mutate:  func(bp *mansion.Blueprint) { bp.Entrance = "library" },
			wantErr: mansion.ErrBadEntrance,
		},
		{
			name:    "unreachable room",
			mutate:  func(bp *mansion.Blueprint) { bp.Edges = bp.Edges[:1] },
			wantErr: mansion.ErrUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp := threeRooms()
			tt.mutate(bp)
			m, err := mansion.Build(bp)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, m)
		})
	}
}

func TestDescendAndLeaves(t *testing.T) {
	m, err := mansion.Build(threeRooms())
	require.NoError(t, err)
	defer m.Teardown()

	hall := m.Entrance()
	require.NotNil(t, hall)
	assert.False(t, hall.IsLeaf())

	library, err := hall.Descend(mansion.DirLeft)
	require.NoError(t, err)
	assert.Equal(t, "Library", library.Name)
	assert.True(t, library.IsLeaf())

	kitchen, err := hall.Descend(mansion.DirRight)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", kitchen.Name)
	assert.True(t, kitchen.IsLeaf())

	// a leaf has neither exit
	_, err = library.Descend(mansion.DirLeft)
	assert.ErrorIs(t, err, mansion.ErrPathUnavailable)
	_, err = library.Descend(mansion.DirRight)
	assert.ErrorIs(t, err, mansion.ErrPathUnavailable)

	_, err = hall.Descend("sideways")
	assert.ErrorIs(t, err, mansion.ErrBadDirection)
}

func TestCollectClue_Once(t *testing.T) {
	m, err := mansion.Build(threeRooms())
	require.NoError(t, err)
	defer m.Teardown()

	library, err := m.Entrance().Descend(mansion.DirLeft)
	require.NoError(t, err)

	clue, suspect, ok := library.CollectClue()
	require.True(t, ok)
	assert.Equal(t, "a torn page", clue)
	assert.Equal(t, "Colonel Mostarda", suspect)

	// re-visits find nothing, however often they come back
	for i := 0; i < 3; i++ {
		clue, suspect, ok = library.CollectClue()
		assert.False(t, ok)
		assert.Empty(t, clue)
		assert.Empty(t, suspect)
	}

	// a room without a clue never yields one
	_, _, ok = m.Entrance().CollectClue()
	assert.False(t, ok)
}

func TestTeardown_ReleasesEveryRoomOnce(t *testing.T) {
	m, err := mansion.Build(threeRooms())
	require.NoError(t, err)
	assert.Equal(t, 3, m.Live())

	m.Teardown()
	assert.Equal(t, 0, m.Live())
	assert.Nil(t, m.Entrance())

	// a second teardown must not double-release
	m.Teardown()
	assert.Equal(t, 0, m.Live())
}

func TestLoadBlueprint(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.json")
	data := `{
		"entrance": "hall",
		"rooms": [
			{"id": "hall", "name": "Entrance Hall"},
			{"id": "study", "name": "Study", "clue": "a burnt letter", "suspect": "Professor Black"}
		],
		"edges": [
			{"parent": "hall", "direction": "right", "child": "study"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	bp, err := mansion.LoadBlueprint(path)
	require.NoError(t, err)
	assert.Equal(t, "hall", bp.Entrance)
	require.Len(t, bp.Rooms, 2)
	assert.Equal(t, "Professor Black", bp.Rooms[1].Suspect)

	m, err := mansion.Build(bp)
	require.NoError(t, err)
	defer m.Teardown()
	assert.Equal(t, 2, m.Live())
}

func TestLoadBlueprint_Errors(t *testing.T) {
	_, err := mansion.LoadBlueprint(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
	_, err = mansion.LoadBlueprint(bad)
	assert.Error(t, err)
}

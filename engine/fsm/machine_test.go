package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	stateA StateID = iota + 2
	stateB
	stateGroup
	stateC
)

const (
	trigGo Trigger = iota + 1
	trigBack
	trigHome
)

type trace struct {
	log   []string
	allow bool
}

func buildMachine(t *testing.T) *Machine[*trace] {
	t.Helper()
	m := NewMachine[*trace]()
	m.AddState(StateRoot, "Root", StateNone)
	m.AddState(stateA, "A", StateRoot)
	m.AddState(stateB, "B", StateRoot)
	m.AddState(stateGroup, "Group", StateRoot)
	m.AddState(stateC, "C", stateGroup)

	for _, id := range []StateID{stateA, stateB, stateGroup, stateC} {
		name := m.nodes[id].Name
		m.OnEnter(id, func(tr *trace) { tr.log = append(tr.log, "enter "+name) })
		m.OnExit(id, func(tr *trace) { tr.log = append(tr.log, "exit "+name) })
	}

	m.AddTransition(stateA, Transition[*trace]{TargetID: stateB, Trigger: trigGo, Guard: func(tr *trace) bool { return tr.allow }})
	m.AddTransition(stateB, Transition[*trace]{TargetID: stateC, Trigger: trigGo})
	m.AddTransition(stateC, Transition[*trace]{TargetID: stateA, Trigger: trigBack})
	m.AddTransition(StateRoot, Transition[*trace]{TargetID: stateA, Trigger: trigHome})

	m.InitialStateID = stateA
	require.NoError(t, m.CompilePaths())
	return m
}

func TestMachine_InitEntersPath(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{}

	require.NoError(t, m.Init(tr))
	assert.Equal(t, stateA, m.ActiveStateID())
	assert.Equal(t, "A", m.ActiveName())
	assert.Equal(t, []string{"enter A"}, tr.log)
}

func TestMachine_GuardBlocksTransition(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{}
	require.NoError(t, m.Init(tr))

	assert.False(t, m.Fire(tr, trigGo))
	assert.Equal(t, stateA, m.ActiveStateID())

	tr.allow = true
	assert.True(t, m.Fire(tr, trigGo))
	assert.Equal(t, stateB, m.ActiveStateID())
}

func TestMachine_HierarchicalEnterExit(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{allow: true}
	require.NoError(t, m.Init(tr))
	m.Fire(tr, trigGo)
	tr.log = nil

	require.True(t, m.Fire(tr, trigGo))
	assert.Equal(t, []string{"exit B", "enter Group", "enter C"}, tr.log)
	assert.True(t, m.IsIn(stateGroup))
	assert.True(t, m.IsIn(StateRoot))

	tr.log = nil
	require.True(t, m.Fire(tr, trigBack))
	assert.Equal(t, []string{"exit C", "exit Group", "enter A"}, tr.log)
	assert.False(t, m.IsIn(stateGroup))
}

func TestMachine_TriggerBubblesToRoot(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{allow: true}
	require.NoError(t, m.Init(tr))
	m.Fire(tr, trigGo)

	assert.True(t, m.Fire(tr, trigHome))
	assert.Equal(t, stateA, m.ActiveStateID())

	assert.False(t, m.Fire(tr, trigHome), "self transition is ignored")
}

func TestMachine_Reset(t *testing.T) {
	m := buildMachine(t)
	tr := &trace{allow: true}
	require.NoError(t, m.Init(tr))
	m.Fire(tr, trigGo)
	tr.log = nil

	require.NoError(t, m.Reset(tr))
	assert.Equal(t, stateA, m.ActiveStateID())
	assert.Equal(t, []string{"exit B", "enter A"}, tr.log)
}

func TestMachine_ReentrantFirePanics(t *testing.T) {
	m := NewMachine[*trace]()
	m.AddState(StateRoot, "Root", StateNone)
	m.AddState(stateA, "A", StateRoot)
	m.AddState(stateB, "B", StateRoot)
	m.AddTransition(stateA, Transition[*trace]{TargetID: stateB, Trigger: trigGo})
	m.AddTransition(stateB, Transition[*trace]{TargetID: stateA, Trigger: trigBack})
	m.OnEnter(stateB, func(tr *trace) { m.Fire(tr, trigBack) })
	m.InitialStateID = stateA
	require.NoError(t, m.CompilePaths())
	require.NoError(t, m.Init(&trace{}))

	assert.Panics(t, func() { m.Fire(&trace{}, trigGo) })
}

func TestMachine_Errors(t *testing.T) {
	m := NewMachine[*trace]()
	assert.Error(t, m.Init(&trace{}), "no initial state")
	assert.False(t, m.Fire(&trace{}, trigGo), "not initialized")

	m.AddState(stateA, "A", stateB)
	assert.Error(t, m.CompilePaths(), "missing parent")
}

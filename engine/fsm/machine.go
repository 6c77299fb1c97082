package fsm

import (
	"fmt"
	"slices"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init enters InitialStateID, running OnEnter for the chain from Root to the initial leaf
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}
	if node.Path == nil {
		return fmt.Errorf("paths not compiled")
	}

	m.activeStateID = node.ID
	m.activePath = slices.Clone(node.Path)

	for _, id := range m.activePath {
		for _, action := range m.nodes[id].OnEnter {
			action(ctx)
		}
	}
	return nil
}

// Fire routes a trigger from the active leaf up to the root
// The first transition whose trigger matches and whose guard passes is taken
// Returns true if a transition occurred
func (m *Machine[T]) Fire(ctx T, trigger Trigger) bool {
	if m.activeStateID == StateNone {
		return false
	}
	if m.firing {
		panic(fmt.Sprintf("FSM: re-entrant Fire(%d) from state %q", trigger, m.ActiveName()))
	}

	// Bubble up: Leaf -> Parent -> Root
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Trigger != trigger {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				return m.transition(ctx, trans.TargetID)
			}
		}
		currID = node.ParentID
	}

	return false
}

// transition performs the state change, self transitions are ignored
func (m *Machine[T]) transition(ctx T, targetID StateID) bool {
	if m.activeStateID == targetID {
		return false
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state ID %d", targetID))
	}

	m.firing = true
	defer func() { m.firing = false }()

	// Find LCA
	lcaIndex := -1
	currentPath := m.activePath
	targetPath := targetNode.Path

	minLen := min(len(currentPath), len(targetPath))
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		for _, action := range m.nodes[currentPath[i]].OnExit {
			action(ctx)
		}
	}

	// Commit before entering so enter actions observe the target state
	m.activeStateID = targetID
	m.activePath = append(m.activePath[:0], targetPath...)

	// Enter phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		for _, action := range m.nodes[targetPath[i]].OnEnter {
			action(ctx)
		}
	}

	return true
}

// Reset exits the whole active path and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		for _, action := range m.nodes[m.activePath[i]].OnExit {
			action(ctx)
		}
	}
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]

	return m.Init(ctx)
}

// ActiveStateID returns the current leaf state
func (m *Machine[T]) ActiveStateID() StateID {
	return m.activeStateID
}

// ActiveName returns the current leaf state name
func (m *Machine[T]) ActiveName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// IsIn reports whether id is the active leaf or one of its ancestors
func (m *Machine[T]) IsIn(id StateID) bool {
	return slices.Contains(m.activePath, id)
}

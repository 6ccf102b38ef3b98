package domain

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// NetworkDeployment is the recorded pipeline progress on one network.
type NetworkDeployment struct {
	Token        *common.Address    `json:"token,omitempty"`
	Pool         *common.Address    `json:"pool,omitempty"`
	RolesGranted bool               `json:"rolesGranted"`
	AdminClaimed bool               `json:"adminClaimed"`
	Linked       bool               `json:"linked"`
	Configured   bool               `json:"configured"`
	Minted       bool               `json:"minted"`
	Transactions []StageTransaction `json:"transactions,omitempty"`
}

// StageTransaction records a confirmed transaction sent by a stage.
type StageTransaction struct {
	Stage       Stage       `json:"stage"`
	Action      string      `json:"action"`
	Hash        common.Hash `json:"hash"`
	BlockNumber uint64      `json:"blockNumber"`
	ConfirmedAt time.Time   `json:"confirmedAt"`
}

// Completed reports whether the stage is recorded complete on this network.
func (n *NetworkDeployment) Completed(stage Stage) bool {
	if n == nil {
		return false
	}
	switch stage {
	case StageDeployToken:
		return n.Token != nil
	case StageDeployPool:
		return n.Pool != nil
	case StageGrantRoles:
		return n.RolesGranted
	case StageClaimAdmin:
		return n.AdminClaimed
	case StageLinkPool:
		return n.Linked
	case StageConfigurePool:
		return n.Configured
	case StageMintSupply:
		return n.Minted
	}
	return false
}

// DeploymentState is the per-network progress of one named pipeline run.
type DeploymentState struct {
	Name      string                            `json:"name"`
	Networks  map[NetworkKey]*NetworkDeployment `json:"networks"`
	CreatedAt time.Time                         `json:"createdAt"`
	UpdatedAt time.Time                         `json:"updatedAt"`
}

// NewDeploymentState creates an empty state covering keys.
func NewDeploymentState(name string, keys []NetworkKey) *DeploymentState {
	now := time.Now().UTC()
	state := &DeploymentState{
		Name:      name,
		Networks:  make(map[NetworkKey]*NetworkDeployment, len(keys)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, key := range keys {
		state.Networks[key] = &NetworkDeployment{}
	}
	return state
}

// Network returns the record for key, or an empty record if absent.
func (s *DeploymentState) Network(key NetworkKey) *NetworkDeployment {
	if n, ok := s.Networks[key]; ok && n != nil {
		return n
	}
	return &NetworkDeployment{}
}

// Keys returns the networks tracked by the state in the given order.
func (s *DeploymentState) Keys(order []NetworkKey) []NetworkKey {
	keys := make([]NetworkKey, 0, len(s.Networks))
	for _, key := range order {
		if _, ok := s.Networks[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// StageComplete reports whether stage is recorded on every network.
func (s *DeploymentState) StageComplete(stage Stage) bool {
	if len(s.Networks) == 0 {
		return false
	}
	for _, n := range s.Networks {
		if !n.Completed(stage) {
			return false
		}
	}
	return true
}

// ActiveStage is the earliest stage not yet complete on every network. Once
// stages one to six are complete the pipeline stays on the terminal stage.
func (s *DeploymentState) ActiveStage() Stage {
	for _, stage := range Stages {
		if stage.Terminal() {
			return stage
		}
		if !s.StageComplete(stage) {
			return stage
		}
	}
	return StageMintSupply
}

// StageResult is what a confirmed stage action contributes to the state.
type StageResult struct {
	Stage        Stage
	Network      NetworkKey
	Token        *common.Address
	Pool         *common.Address
	Transactions []StageTransaction
}

// Apply records a confirmed stage result. It is the only mutation path for
// stage completion.
func (s *DeploymentState) Apply(result StageResult) error {
	n, ok := s.Networks[result.Network]
	if !ok || n == nil {
		return fmt.Errorf("%w: %s is not part of deployment %q", ErrUnsupportedNetwork, result.Network, s.Name)
	}

	switch result.Stage {
	case StageDeployToken:
		if result.Token == nil {
			return fmt.Errorf("deploy token result for %s has no address", result.Network)
		}
		addr := *result.Token
		n.Token = &addr
	case StageDeployPool:
		if result.Pool == nil {
			return fmt.Errorf("deploy pool result for %s has no address", result.Network)
		}
		addr := *result.Pool
		n.Pool = &addr
	case StageGrantRoles:
		n.RolesGranted = true
	case StageClaimAdmin:
		n.AdminClaimed = true
	case StageLinkPool:
		n.Linked = true
	case StageConfigurePool:
		n.Configured = true
	case StageMintSupply:
		n.Minted = true
	default:
		return fmt.Errorf("unknown stage %d", int(result.Stage))
	}

	n.Transactions = append(n.Transactions, result.Transactions...)
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// ImportAddresses records token and pool addresses deployed outside the
// pipeline. Replacing an address drops every completion that depended on
// the old one, including pool configuration on the remote networks.
func (s *DeploymentState) ImportAddresses(key NetworkKey, token, pool *common.Address) error {
	n, ok := s.Networks[key]
	if !ok || n == nil {
		return fmt.Errorf("%w: %s is not part of deployment %q", ErrUnsupportedNetwork, key, s.Name)
	}
	if pool != nil && token == nil && n.Token == nil {
		return fmt.Errorf("cannot import a pool on %s before its token", key)
	}

	changed := false
	if token != nil && !sameAddress(n.Token, token) {
		addr := *token
		n.Token = &addr
		n.Pool = nil
		n.RolesGranted = false
		n.AdminClaimed = false
		n.Linked = false
		n.Configured = false
		n.Minted = false
		changed = true
	}
	if pool != nil && !sameAddress(n.Pool, pool) {
		addr := *pool
		n.Pool = &addr
		n.RolesGranted = false
		n.Linked = false
		n.Configured = false
		changed = true
	}
	if changed {
		for _, remote := range key.Remotes(sortedKeys(s.Networks)) {
			s.Network(remote).Configured = false
		}
	}
	s.UpdatedAt = time.Now().UTC()
	return nil
}

func sameAddress(recorded, imported *common.Address) bool {
	return recorded != nil && *recorded == *imported
}

// Availability says whether a stage action may run on a network.
type Availability struct {
	Stage   Stage
	Network NetworkKey
	Enabled bool
	Reason  string
}

// Err converts a disabled availability into a PreconditionError.
func (a Availability) Err() error {
	if a.Enabled {
		return nil
	}
	return &PreconditionError{Stage: a.Stage, Network: a.Network, Reason: a.Reason}
}

// Availability computes whether stage may run on key. A stage is enabled
// when it is not past the active stage, its predecessor is recorded on the
// same network and, for pool configuration, every remote network has its
// token and pool recorded.
func (s *DeploymentState) Availability(stage Stage, key NetworkKey) Availability {
	a := Availability{Stage: stage, Network: key}
	n, ok := s.Networks[key]
	if !ok || n == nil {
		a.Reason = fmt.Sprintf("network %s is not part of this deployment", key)
		return a
	}
	if !stage.Valid() {
		a.Reason = "unknown stage"
		return a
	}
	if n.Completed(stage) && !stage.Repeatable() {
		a.Reason = "already complete"
		return a
	}
	if stage > StageDeployToken {
		prev := stage - 1
		if !n.Completed(prev) {
			a.Reason = fmt.Sprintf("%s is not complete on %s", prev.Title(), key)
			return a
		}
	}
	if active := s.ActiveStage(); stage > active {
		a.Reason = fmt.Sprintf("%s must complete on every network first", active.Title())
		return a
	}
	if stage == StageConfigurePool {
		for _, remote := range key.Remotes(sortedKeys(s.Networks)) {
			r := s.Network(remote)
			if r.Token == nil || r.Pool == nil {
				a.Reason = fmt.Sprintf("token and pool on %s are not recorded", remote)
				return a
			}
		}
	}
	a.Enabled = true
	return a
}

func sortedKeys(m map[NetworkKey]*NetworkDeployment) []NetworkKey {
	keys := make([]NetworkKey, 0, len(m))
	for _, key := range NetworkKeys {
		if _, ok := m[key]; ok {
			keys = append(keys, key)
		}
	}
	for key := range m {
		found := false
		for _, k := range keys {
			if k == key {
				found = true
				break
			}
		}
		if !found {
			keys = append(keys, key)
		}
	}
	return keys
}

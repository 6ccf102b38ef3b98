package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Stage is one of the seven ordered pipeline stages.
type Stage int

const (
	StageDeployToken Stage = iota + 1
	StageDeployPool
	StageGrantRoles
	StageClaimAdmin
	StageLinkPool
	StageConfigurePool
	StageMintSupply
)

// Stages lists every stage in execution order.
var Stages = []Stage{
	StageDeployToken,
	StageDeployPool,
	StageGrantRoles,
	StageClaimAdmin,
	StageLinkPool,
	StageConfigurePool,
	StageMintSupply,
}

var stageNames = map[Stage]string{
	StageDeployToken:   "deploy-token",
	StageDeployPool:    "deploy-pool",
	StageGrantRoles:    "grant-roles",
	StageClaimAdmin:    "claim-admin",
	StageLinkPool:      "link-pool",
	StageConfigurePool: "configure-pool",
	StageMintSupply:    "mint",
}

var stageTitles = map[Stage]string{
	StageDeployToken:   "Deploy Token",
	StageDeployPool:    "Deploy Pool",
	StageGrantRoles:    "Claim Mint/Burn Roles",
	StageClaimAdmin:    "Claim Admin Role",
	StageLinkPool:      "Link Token to Pool",
	StageConfigurePool: "Configure Pools",
	StageMintSupply:    "Mint Test Supply",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage-%d", int(s))
}

// Title is the human readable stage name.
func (s Stage) Title() string {
	if title, ok := stageTitles[s]; ok {
		return title
	}
	return s.String()
}

// Valid reports whether s is one of the seven stages.
func (s Stage) Valid() bool {
	return s >= StageDeployToken && s <= StageMintSupply
}

// Terminal reports whether the stage has no successor.
func (s Stage) Terminal() bool {
	return s == StageMintSupply
}

// Repeatable stages may be run again after completion.
func (s Stage) Repeatable() bool {
	return s == StageMintSupply
}

// ParseStage accepts a stage number (1-7) or a stage name.
func ParseStage(s string) (Stage, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		stage := Stage(n)
		if !stage.Valid() {
			return 0, fmt.Errorf("stage %d out of range 1-%d", n, len(Stages))
		}
		return stage, nil
	}
	for stage, name := range stageNames {
		if name == s {
			return stage, nil
		}
	}
	return 0, fmt.Errorf("unknown stage %q", s)
}

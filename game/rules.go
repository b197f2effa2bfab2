package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shadowgov/server/consts"
)

// Power is a presidential power unlocked by the fascist track.
type Power string

const (
	PowerNone            Power = "none"
	PowerInvestigate     Power = "investigate_loyalty"
	PowerSpecialElection Power = "call_special_election"
	PowerPolicyPeek      Power = "policy_peek"
	PowerExecution       Power = "execution"
)

// Rules holds the table-driven parts of the rule set. The printed rulebook
// values are the defaults; hosts may load variants from YAML.
type Rules struct {
	LiberalPolicies int `yaml:"liberalPolicies"`
	FascistPolicies int `yaml:"fascistPolicies"`

	LiberalTrack int `yaml:"liberalTrack"`
	FascistTrack int `yaml:"fascistTrack"`

	VetoUnlock      int `yaml:"vetoUnlock"`
	TrackerLimit    int `yaml:"trackerLimit"`
	RelaxTermLimits bool `yaml:"relaxTermLimits"`

	// FascistCounts maps roster size to the number of plain fascists.
	// Hitler is always exactly one and is counted separately.
	FascistCounts map[int]int `yaml:"fascistCounts"`

	// Powers maps roster size to the power unlocked at each fascist track
	// position (index 0 = first fascist policy).
	Powers map[int][]Power `yaml:"powers"`
}

// DefaultRules returns the standard rulebook tables.
func DefaultRules() Rules {
	return Rules{
		LiberalPolicies: consts.LiberalPolicyCount,
		FascistPolicies: consts.FascistPolicyCount,
		LiberalTrack:    consts.LiberalTrackLength,
		FascistTrack:    consts.FascistTrackLength,
		VetoUnlock:      consts.VetoUnlockThreshold,
		TrackerLimit:    consts.ElectionTrackerLimit,
		RelaxTermLimits: true,
		FascistCounts: map[int]int{
			5: 1, 6: 1, 7: 2, 8: 2, 9: 3, 10: 3,
		},
		Powers: map[int][]Power{
			5:  {PowerNone, PowerNone, PowerPolicyPeek, PowerExecution, PowerExecution},
			6:  {PowerNone, PowerNone, PowerPolicyPeek, PowerExecution, PowerExecution},
			7:  {PowerNone, PowerInvestigate, PowerSpecialElection, PowerExecution, PowerExecution},
			8:  {PowerNone, PowerInvestigate, PowerSpecialElection, PowerExecution, PowerExecution},
			9:  {PowerInvestigate, PowerInvestigate, PowerSpecialElection, PowerExecution, PowerExecution},
			10: {PowerInvestigate, PowerInvestigate, PowerSpecialElection, PowerExecution, PowerExecution},
		},
	}
}

// LoadRules reads a YAML rules file, applying defaults for absent fields.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read rules: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("parse rules: %w", err)
	}
	return rules, nil
}

// PowerAt gets the power unlocked when the fascist track reaches count in a
// game that started with rosterSize players.
func (r Rules) PowerAt(rosterSize, count int) Power {
	table, ok := r.Powers[rosterSize]
	if !ok || count < 1 || count > len(table) {
		return PowerNone
	}
	return table[count-1]
}

// RoleSet builds the role multiset for a roster size.
func (r Rules) RoleSet(rosterSize int) []Role {
	fascists := r.FascistCounts[rosterSize]
	roles := make([]Role, 0, rosterSize)
	roles = append(roles, RoleHitler)
	for i := 0; i < fascists; i++ {
		roles = append(roles, RoleFascist)
	}
	for len(roles) < rosterSize {
		roles = append(roles, RoleLiberal)
	}
	return roles
}

// HitlerKnowsFascists reports whether Hitler learns the fascist identities
// at role reveal. Only true in 5-6 player games.
func (r Rules) HitlerKnowsFascists(rosterSize int) bool {
	return rosterSize <= 6
}

package bank

import (
	"strings"
	"testing"
)

func minimalCluster(id string, d Domain) CareerCluster {
	return CareerCluster{
		ID:      id,
		Name:    id,
		Domains: []Domain{d},
		Opportunities: map[SkillTier][]string{
			TierExplore:  {"x"},
			TierDevelop:  {"y"},
			TierAdvanced: {"z"},
		},
	}
}

func fullModuleSet() []Module {
	return []Module{
		{ID: ModuleA, Kind: KindForcedChoice, Items: []Item{
			{ID: "a1", Prompt: "p", Options: []Option{{Text: "x", Domain: DomainAnalytical}, {Text: "y", Domain: DomainCreative}}},
		}},
		{ID: ModuleB, Kind: KindTimedChoice, Items: []Item{
			{ID: "b1", Prompt: "p", Options: []Option{{Text: "x", Domain: DomainAnalytical, Correct: true}, {Text: "y", Domain: DomainAnalytical}}},
		}},
		{ID: ModuleC, Kind: KindOpenEnded, Items: []Item{
			{ID: "c1", Prompt: "p", Domain: DomainSocial, MinWords: 10, MaxWords: 50},
		}},
		{ID: ModuleD, Kind: KindFriction, Items: []Item{
			{ID: "d1", Prompt: "p", Options: []Option{
				{Text: "x", FrictionLevel: FrictionLow, Score: 2},
				{Text: "y", FrictionLevel: FrictionHigh, Score: 0},
			}},
		}},
	}
}

func TestValidateBank_Valid(t *testing.T) {
	cat := []CareerCluster{minimalCluster("c1", DomainAnalytical)}
	if err := validateBank(fullModuleSet(), cat); err != nil {
		t.Fatalf("expected valid, got: %v", err)
	}
}

func TestValidateBank_DuplicateItemID(t *testing.T) {
	mods := fullModuleSet()
	mods[0].Items = append(mods[0].Items, Item{
		ID: "a1", Prompt: "dup",
		Options: []Option{{Text: "x", Domain: DomainAnalytical}, {Text: "y", Domain: DomainCreative}},
	})
	err := validateBank(mods, nil)
	if err == nil || !strings.Contains(err.Error(), "duplicate item ID") {
		t.Errorf("want duplicate item ID error, got: %v", err)
	}
}

func TestValidateBank_TimedChoiceNeedsOneCorrect(t *testing.T) {
	mods := fullModuleSet()
	mods[1].Items[0].Options[0].Correct = false
	err := validateBank(mods, nil)
	if err == nil || !strings.Contains(err.Error(), "exactly 1 correct option") {
		t.Errorf("want correct-option error, got: %v", err)
	}
}

func TestValidateBank_OpenEndedWordBounds(t *testing.T) {
	mods := fullModuleSet()
	mods[2].Items[0].MaxWords = 5 // below MinWords
	err := validateBank(mods, nil)
	if err == nil || !strings.Contains(err.Error(), "MaxWords") {
		t.Errorf("want word-bound error, got: %v", err)
	}
}

func TestValidateBank_FrictionScoreRange(t *testing.T) {
	mods := fullModuleSet()
	mods[3].Items[0].Options[0].Score = 3
	err := validateBank(mods, nil)
	if err == nil || !strings.Contains(err.Error(), "score must be in [0,2]") {
		t.Errorf("want score range error, got: %v", err)
	}
}

func TestValidateBank_MissingModule(t *testing.T) {
	mods := fullModuleSet()[:3] // drop module D
	err := validateBank(mods, nil)
	if err == nil || !strings.Contains(err.Error(), `module "D" missing`) {
		t.Errorf("want missing module error, got: %v", err)
	}
}

func TestValidateBank_ClusterMissingTier(t *testing.T) {
	c := minimalCluster("c1", DomainAnalytical)
	delete(c.Opportunities, TierAdvanced)
	err := validateBank(fullModuleSet(), []CareerCluster{c})
	if err == nil || !strings.Contains(err.Error(), `tier "advanced"`) {
		t.Errorf("want missing tier error, got: %v", err)
	}
}

package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/talgya/households/internal/agetable"
	"github.com/talgya/households/internal/config"
	"github.com/talgya/households/internal/household"
	"github.com/talgya/households/internal/identity"
	"github.com/talgya/households/internal/rules"
)

// BuildAgeTable converts a config.AgeTableConfig into an agetable.AgeTable.
func BuildAgeTable(cfg config.AgeTableConfig) (*agetable.AgeTable, error) {
	return agetable.New(cfg.Ages, cfg.Male, cfg.Female)
}

// BuildRuleSet assembles a community's four behavior rules from its
// configuration, selecting the concrete rule combination named by
// cfg.RulePreset.
func BuildRuleSet(cfg config.CommunityConfig) (household.RuleSet, error) {
	eligibility, err := BuildAgeTable(cfg.Eligibility)
	if err != nil {
		return household.RuleSet{}, fmt.Errorf("bootstrap: eligibility table: %w", err)
	}
	remarriage, err := BuildAgeTable(cfg.Remarriage)
	if err != nil {
		return household.RuleSet{}, fmt.Errorf("bootstrap: remarriage table: %w", err)
	}
	fertility, err := BuildAgeTable(cfg.Fertility)
	if err != nil {
		return household.RuleSet{}, fmt.Errorf("bootstrap: fertility table: %w", err)
	}

	majority := cfg.MajorityAge
	if majority <= 0 {
		majority = 16
	}

	birth, err := rules.NewBirthRule(fertility, fertility, cfg.FemaleSexRatio, nil, nil, MaleNames(), FemaleNames())
	if err != nil {
		return household.RuleSet{}, fmt.Errorf("bootstrap: birth rule: %w", err)
	}

	switch cfg.RulePreset {
	case config.RulePresetNeverFragmentSonsOnly, "":
		marriage, err := rules.NewMarriageRule(eligibility, rules.GetEligibleExcludingSiblings, rules.PickSpouseRandom, rules.Neolocality(identity.Male), remarriage)
		if err != nil {
			return household.RuleSet{}, fmt.Errorf("bootstrap: marriage rule: %w", err)
		}
		inheritance := &rules.ComplexInheritanceRule{
			HasProperty: rules.HasAnyProperty,
			FindHeirs:   rules.FindHeirsMultiple(rules.FindSons),
			LimitHeirs:  rules.NoLimit,
			Distribute:  rules.FirstHeirAndMoveHousehold,
			Failure:     rules.NoOwner,
		}
		mobility, err := rules.NewMobilityRule(rules.CheckNever, rules.WhoLeavesNobody, rules.DestinationRandomEmptyHouse)
		if err != nil {
			return household.RuleSet{}, fmt.Errorf("bootstrap: mobility rule: %w", err)
		}
		return household.RuleSet{Marriage: marriage, Inheritance: inheritance, Mobility: mobility, Birth: birth}, nil

	case config.RulePresetPatrilocalModerate:
		marriage, err := rules.NewMarriageRule(eligibility, rules.GetEligibleExcludingSiblings, rules.PickSpouseRandom, rules.Patrilocality, remarriage)
		if err != nil {
			return household.RuleSet{}, fmt.Errorf("bootstrap: marriage rule: %w", err)
		}
		inheritance := &rules.ComplexInheritanceRule{
			HasProperty: rules.HasAnyProperty,
			FindHeirs:   rules.FindHeirsMultiple(rules.FindSons, rules.FindBrothersSecondSons),
			LimitHeirs:  rules.ExcludeCurrentOwners,
			Distribute:  rules.FirstHeirAndMoveHousehold,
			Failure:     rules.NoOwner,
		}
		mobility, err := rules.NewMobilityRule(rules.CheckNever, rules.WhoLeavesNobody, rules.DestinationRandomEmptyHouse)
		if err != nil {
			return household.RuleSet{}, fmt.Errorf("bootstrap: mobility rule: %w", err)
		}
		return household.RuleSet{Marriage: marriage, Inheritance: inheritance, Mobility: mobility, Birth: birth}, nil

	case config.RulePresetYoungerBrotherLeaves:
		marriage, err := rules.NewMarriageRule(eligibility, rules.GetEligibleExcludingSiblings, rules.PickSpouseRandom, rules.Patrilocality, remarriage)
		if err != nil {
			return household.RuleSet{}, fmt.Errorf("bootstrap: marriage rule: %w", err)
		}
		inheritance := &rules.ComplexInheritanceRule{
			HasProperty: rules.HasAnyProperty,
			FindHeirs:   rules.FindHeirsMultiple(rules.FindSons),
			LimitHeirs:  rules.NoLimit,
			Distribute:  rules.FirstHeirAndMoveHousehold,
			Failure:     rules.NoOwner,
		}
		mobility, err := rules.NewMobilityRule(
			rules.CheckYoungerBrotherDisinherited(majority),
			rules.WhoLeavesYoungerBrotherWithFamily,
			rules.DestinationRandomEmptyHouse,
		)
		if err != nil {
			return household.RuleSet{}, fmt.Errorf("bootstrap: mobility rule: %w", err)
		}
		return household.RuleSet{Marriage: marriage, Inheritance: inheritance, Mobility: mobility, Birth: birth}, nil

	default:
		return household.RuleSet{}, fmt.Errorf("bootstrap: unknown rule_preset %q", cfg.RulePreset)
	}
}

// BuildWorldFromConfig constructs a World from a fully validated run
// configuration.
func BuildWorldFromConfig(cfg *config.Config, logger *slog.Logger) (*household.World, error) {
	var specs []CommunitySpec
	for _, cc := range cfg.Communities {
		mortality, err := BuildAgeTable(cc.Mortality)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: community %q mortality table: %w", cc.Name, err)
		}
		fertility, err := BuildAgeTable(cc.Fertility)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: community %q fertility table: %w", cc.Name, err)
		}
		ruleSet, err := BuildRuleSet(cc)
		if err != nil {
			return nil, err
		}
		specs = append(specs, CommunitySpec{
			Name:          cc.Name,
			Mortality:     mortality,
			Fertility:     fertility,
			DefaultRules:  ruleSet,
			Population:    cc.Population,
			StartAge:      cc.StartAge,
			Area:          cc.Area,
			HouseCapacity: cc.HouseCapacity,
			HouseRooms:    cc.HouseRooms,
		})
	}
	return BuildWorld(cfg.Seed, specs, logger)
}

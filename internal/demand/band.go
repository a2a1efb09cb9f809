package demand

import "github.com/osse101/CrewPlanner_Go/internal/domain"

// ResolveBand returns the starting level band whose equipment may still be
// outstanding for a crew member at level with equipped filled slots.
// ok is false when the crew member is fully matured and has no demand.
//
// A crew member that has not filled every slot of its current band is assumed
// to still owe the previous band too, so the band backs off one step.
func ResolveBand(level, equipped int) (band int, ok bool) {
	if equipped > domain.MaxEquipmentSlots {
		equipped = domain.MaxEquipmentSlots
	}

	band = level - level%domain.LevelBandSize
	if equipped < domain.MaxEquipmentSlots {
		band -= domain.LevelBandSize
	} else if level >= domain.MaxCrewLevel {
		return 0, false
	}

	if band < domain.MinLevelBand {
		band = domain.MinLevelBand
	}
	return band, true
}

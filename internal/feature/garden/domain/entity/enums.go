package entity

// GardenType describes the setting a garden sits in.
type GardenType string

const (
	GardenTypeSuburban     GardenType = "Suburban"
	GardenTypeAllotment    GardenType = "Allotment"
	GardenTypeVerge        GardenType = "Verge"
	GardenTypeCommunity    GardenType = "Community"
	GardenTypeSmallHolding GardenType = "Small Holding"
	GardenTypePatio        GardenType = "Patio"
	GardenTypeBalcony      GardenType = "Balcony"
	GardenTypeIndoor       GardenType = "Indoor"
	GardenTypeGreenhouse   GardenType = "Greenhouse"
)

var gardenTypeValues = [...]GardenType{
	GardenTypeSuburban,
	GardenTypeAllotment,
	GardenTypeVerge,
	GardenTypeCommunity,
	GardenTypeSmallHolding,
	GardenTypePatio,
	GardenTypeBalcony,
	GardenTypeIndoor,
	GardenTypeGreenhouse,
}

// GardenTypeValues returns every GardenType in declaration order.
func GardenTypeValues() []GardenType {
	return append([]GardenType(nil), gardenTypeValues[:]...)
}

func (t GardenType) Valid() bool {
	for _, v := range gardenTypeValues {
		if v == t {
			return true
		}
	}
	return false
}

// ClimaticZone is the broad climate a garden grows in.
type ClimaticZone string

const (
	ClimaticZoneArid        ClimaticZone = "Arid"
	ClimaticZoneSubtropical ClimaticZone = "Subtropical"
	ClimaticZoneTropical    ClimaticZone = "Tropical"
	ClimaticZoneTemperate   ClimaticZone = "Temperate"
	ClimaticZoneCool        ClimaticZone = "Cool"
)

var climaticZoneValues = [...]ClimaticZone{
	ClimaticZoneArid,
	ClimaticZoneSubtropical,
	ClimaticZoneTropical,
	ClimaticZoneTemperate,
	ClimaticZoneCool,
}

// ClimaticZoneValues returns every ClimaticZone in declaration order.
func ClimaticZoneValues() []ClimaticZone {
	return append([]ClimaticZone(nil), climaticZoneValues[:]...)
}

func (z ClimaticZone) Valid() bool {
	for _, v := range climaticZoneValues {
		if v == z {
			return true
		}
	}
	return false
}

// SoilType is the growing medium of a bed.
type SoilType string

const (
	SoilTypeLoam           SoilType = "Loam"
	SoilTypeClay           SoilType = "Clay"
	SoilTypeSilt           SoilType = "Silt"
	SoilTypeSand           SoilType = "Sand"
	SoilTypePottingMix     SoilType = "Potting Mix"
	SoilTypeSeedRaisingMix SoilType = "Seed Raising Mix"
	SoilTypeCompost        SoilType = "Compost"
)

var soilTypeValues = [...]SoilType{
	SoilTypeLoam,
	SoilTypeClay,
	SoilTypeSilt,
	SoilTypeSand,
	SoilTypePottingMix,
	SoilTypeSeedRaisingMix,
	SoilTypeCompost,
}

// SoilTypeValues returns every SoilType in declaration order.
func SoilTypeValues() []SoilType {
	return append([]SoilType(nil), soilTypeValues[:]...)
}

func (s SoilType) Valid() bool {
	for _, v := range soilTypeValues {
		if v == s {
			return true
		}
	}
	return false
}

// IrrigationZone groups beds that share a watering schedule.
type IrrigationZone string

const (
	IrrigationZoneGrass      IrrigationZone = "Grass"
	IrrigationZoneTrees      IrrigationZone = "Trees"
	IrrigationZoneShrubs     IrrigationZone = "Shrubs"
	IrrigationZoneVegetables IrrigationZone = "Vegetables"
)

var irrigationZoneValues = [...]IrrigationZone{
	IrrigationZoneGrass,
	IrrigationZoneTrees,
	IrrigationZoneShrubs,
	IrrigationZoneVegetables,
}

// IrrigationZoneValues returns every IrrigationZone in declaration order.
func IrrigationZoneValues() []IrrigationZone {
	return append([]IrrigationZone(nil), irrigationZoneValues[:]...)
}

func (z IrrigationZone) Valid() bool {
	for _, v := range irrigationZoneValues {
		if v == z {
			return true
		}
	}
	return false
}

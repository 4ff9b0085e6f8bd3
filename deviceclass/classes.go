package deviceclass

// Sensor device classes and the units Home Assistant accepts for them.
//
// See https://www.home-assistant.io/integrations/sensor/#device-class.
var (
	ApparentPower = sensor("apparent_power", UnitVoltAmpere)
	AQI           = sensor("aqi")

	Area = sensor("area",
		UnitSquareMeter, UnitSquareCentimeter, UnitSquareKilometer, UnitSquareMillimeter, UnitSquareInch,
		UnitSquareFoot, UnitSquareYard, UnitSquareMile, UnitAcre, UnitHectare,
	)

	AtmosphericPressure = sensor("atmospheric_pressure",
		UnitCentibar, UnitBar, UnitHectopascal, UnitMillimeterOfMercury, UnitInchOfMercury, UnitKilopascal,
		UnitMillibar, UnitPascal, UnitPSI,
	)

	Battery = sensor("battery", UnitPercent)

	BloodGlucoseConcentration = sensor("blood_glucose_concentration",
		UnitMilligramsPerDeciliter, UnitMillimolePerLiter,
	)

	CarbonDioxide  = sensor("carbon_dioxide", UnitPartsPerMillion)
	CarbonMonoxide = sensor("carbon_monoxide", UnitPartsPerMillion)
	Current        = sensor("current", UnitAmpere, UnitMilliampere)

	DataRate = sensor("data_rate",
		UnitBitPerSecond, UnitKilobitPerSecond, UnitMegabitPerSecond, UnitGigabitPerSecond, UnitBytePerSecond,
		UnitKilobytePerSecond, UnitMegabytePerSecond, UnitGigabytePerSecond, UnitKibibytePerSecond,
		UnitMebibytePerSecond, UnitGibibytePerSecond,
	)

	DataSize = sensor("data_size",
		UnitBit, UnitKilobit, UnitMegabit, UnitGigabit, UnitByte, UnitKilobyte, UnitMegabyte, UnitGigabyte,
		UnitTerabyte, UnitPetabyte, UnitExabyte, UnitZettabyte, UnitYottabyte, UnitKibibyte, UnitMebibyte,
		UnitGibibyte, UnitTebibyte, UnitPebibyte, UnitExbibyte, UnitZebibyte, UnitYobibyte,
	)

	Date = sensor("date")

	Distance = sensor("distance",
		UnitKilometer, UnitMeter, UnitCentimeter, UnitMillimeter, UnitMile, UnitNauticalMile, UnitYard, UnitInch,
	)

	Duration = sensor("duration", UnitDay, UnitHour, UnitMinute, UnitSecond, UnitMillisecond)

	Energy = sensor("energy",
		UnitJoule, UnitKilojoule, UnitMegajoule, UnitGigajoule, UnitMilliwattHour, UnitWattHour, UnitKilowattHour,
		UnitMegawattHour, UnitGigawattHour, UnitTerawattHour, UnitCalorie, UnitKilocalorie, UnitMegacalorie,
		UnitGigacalorie,
	)

	EnergyStorage = sensor("energy_storage",
		UnitJoule, UnitKilojoule, UnitMegajoule, UnitGigajoule, UnitMilliwattHour, UnitWattHour, UnitKilowattHour,
		UnitMegawattHour, UnitGigawattHour, UnitTerawattHour, UnitCalorie, UnitKilocalorie, UnitMegacalorie,
		UnitGigacalorie,
	)

	Enum             = sensor("enum")
	Frequency        = sensor("frequency", UnitHertz, UnitKilohertz, UnitMegahertz, UnitGigahertz)
	Gas              = sensor("gas", UnitCubicMeter, UnitCubicFoot, UnitCentumCubicFoot)
	Humidity         = sensor("humidity", UnitPercent)
	Illuminance      = sensor("illuminance", UnitLux)
	Irradiance       = sensor("irradiance", UnitWattsPerSquareMeter, UnitBTUPerHourSquareFoot)
	Moisture         = sensor("moisture", UnitPercent)
	Monetary         = sensor("monetary")
	NitrogenDioxide  = sensor("nitrogen_dioxide", UnitMicrogramsPerCubicMeter)
	NitrogenMonoxide = sensor("nitrogen_monoxide", UnitMicrogramsPerCubicMeter)
	NitrousOxide     = sensor("nitrous_oxide", UnitMicrogramsPerCubicMeter)
	Ozone            = sensor("ozone", UnitMicrogramsPerCubicMeter)
	PH               = sensor("ph")
	PM1              = sensor("pm1", UnitMicrogramsPerCubicMeter)
	PM25             = sensor("pm25", UnitMicrogramsPerCubicMeter)
	PM10             = sensor("pm10", UnitMicrogramsPerCubicMeter)
	PowerFactor      = sensor("power_factor", UnitPercent)

	Power = sensor("power",
		UnitMilliwatt, UnitWatt, UnitKilowatt, UnitMegawatt, UnitGigawatt, UnitTerawatt,
	)

	Precipitation = sensor("precipitation", UnitCentimeter, UnitInch, UnitMillimeter)

	PrecipitationIntensity = sensor("precipitation_intensity",
		UnitInchesPerDay, UnitInchesPerHour, UnitMillimetersPerDay, UnitMillimetersPerHour,
	)

	Pressure = sensor("pressure",
		UnitPascal, UnitKilopascal, UnitHectopascal, UnitBar, UnitCentibar, UnitMillibar, UnitMillimeterOfMercury,
		UnitInchOfMercury, UnitPSI,
	)

	ReactivePower  = sensor("reactive_power", UnitVoltAmpereReactive)
	SignalStrength = sensor("signal_strength", UnitDecibel, UnitDecibelMilliwatt)
	SoundPressure  = sensor("sound_pressure", UnitDecibel, UnitDecibelA)

	Speed = sensor("speed",
		UnitFeetPerSecond, UnitInchesPerDay, UnitInchesPerHour, UnitInchesPerSecond, UnitKilometersPerHour, UnitKnot,
		UnitMetersPerSecond, UnitMilesPerHour, UnitMillimetersPerDay, UnitMillimetersPerSecond,
	)

	SulphurDioxide                = sensor("sulphur_dioxide", UnitMicrogramsPerCubicMeter)
	Temperature                   = sensor("temperature", UnitCelsius, UnitFahrenheit, UnitKelvin)
	Timestamp                     = sensor("timestamp")
	VolatileOrganicCompounds      = sensor("volatile_organic_compounds", UnitMicrogramsPerCubicMeter)
	VolatileOrganicCompoundsParts = sensor("volatile_organic_compounds_parts", UnitPartsPerMillion, UnitPartsPerBillion)
	Voltage                       = sensor("voltage", UnitVolt, UnitMillivolt, UnitMicrovolt)

	Volume = sensor("volume",
		UnitLiter, UnitMilliliter, UnitGallon, UnitFluidOunce, UnitCubicMeter, UnitCubicFoot, UnitCentumCubicFoot,
	)

	VolumeFlowRate = sensor("volume_flow_rate",
		UnitCubicMetersPerHour, UnitCubicFeetPerMinute, UnitLitersPerMinute, UnitGallonsPerMinute,
		UnitMillilitersPerSecond,
	)

	VolumeStorage = sensor("volume_storage",
		UnitLiter, UnitMilliliter, UnitGallon, UnitFluidOunce, UnitCubicMeter, UnitCubicFoot, UnitCentumCubicFoot,
	)

	Water = sensor("water",
		UnitLiter, UnitGallon, UnitCubicMeter, UnitCubicFoot, UnitCentumCubicFoot,
	)

	Weight = sensor("weight",
		UnitKilogram, UnitGram, UnitMilligram, UnitMicrogram, UnitOunce, UnitPound, UnitStone,
	)

	WindSpeed = sensor("wind_speed",
		UnitBeaufort, UnitFeetPerSecond, UnitKilometersPerHour, UnitKnot, UnitMetersPerSecond, UnitMilesPerHour,
	)
)

// Sensors without a Home Assistant device class. Each still gets a stable object id.
var (
	None              = undefined("")
	Brightness        = undefined("brightness", UnitPercent)
	UnitConcentration = undefined("unit_concentration", UnitPerMilliliter, UnitPerDeciliter, UnitPerLiter)
	JSON              = undefined("json")
	String            = undefined("string")
)

// Binary sensor device classes.
//
// See https://www.home-assistant.io/integrations/binary_sensor/#device-class.
var (
	BinaryBattery         = binarySensor("battery")
	BinaryBatteryCharging = binarySensor("battery_charging")
	BinaryCarbonMonoxide  = binarySensor("carbon_monoxide")
	BinaryCold            = binarySensor("cold")
	BinaryConnectivity    = binarySensor("connectivity")
	BinaryDoor            = binarySensor("door")
	BinaryGarageDoor      = binarySensor("garage_door")
	BinaryGas             = binarySensor("gas")
	BinaryHeat            = binarySensor("heat")
	BinaryLight           = binarySensor("light")
	BinaryLock            = binarySensor("lock")
	BinaryMoisture        = binarySensor("moisture")
	BinaryMotion          = binarySensor("motion")
	BinaryMoving          = binarySensor("moving")
	BinaryOccupancy       = binarySensor("occupancy")
	BinaryOpening         = binarySensor("opening")
	BinaryPlug            = binarySensor("plug")
	BinaryPower           = binarySensor("power")
	BinaryPresence        = binarySensor("presence")
	BinaryProblem         = binarySensor("problem")
	BinaryRunning         = binarySensor("running")
	BinarySafety          = binarySensor("safety")
	BinarySmoke           = binarySensor("smoke")
	BinarySound           = binarySensor("sound")
	BinaryTamper          = binarySensor("tamper")
	BinaryUpdate          = binarySensor("update")
	BinaryVibration       = binarySensor("vibration")
	BinaryWindow          = binarySensor("window")
)

// Binary sensors without a Home Assistant device class.
var (
	BinaryNone = undefinedBinary("")
	Boolean    = undefinedBinary("boolean")
)

package deviceclass

// Unit is a unit_of_measurement string as Home Assistant expects it.
type Unit string

// Ratios
const (
	UnitPercent         Unit = "%"
	UnitPartsPerMillion Unit = "ppm"
	UnitPartsPerBillion Unit = "ppb"
)

// Temperature
const (
	UnitCelsius    Unit = "°C"
	UnitFahrenheit Unit = "°F"
	UnitKelvin     Unit = "K"
)

// Electrical
const (
	UnitVolt               Unit = "V"
	UnitMillivolt          Unit = "mV"
	UnitMicrovolt          Unit = "µV"
	UnitAmpere             Unit = "A"
	UnitMilliampere        Unit = "mA"
	UnitVoltAmpere         Unit = "VA"
	UnitVoltAmpereReactive Unit = "var"
	UnitMilliwatt          Unit = "mW"
	UnitWatt               Unit = "W"
	UnitKilowatt           Unit = "kW"
	UnitMegawatt           Unit = "MW"
	UnitGigawatt           Unit = "GW"
	UnitTerawatt           Unit = "TW"
)

// Energy
const (
	UnitJoule         Unit = "J"
	UnitKilojoule     Unit = "kJ"
	UnitMegajoule     Unit = "MJ"
	UnitGigajoule     Unit = "GJ"
	UnitMilliwattHour Unit = "mWh"
	UnitWattHour      Unit = "Wh"
	UnitKilowattHour  Unit = "kWh"
	UnitMegawattHour  Unit = "MWh"
	UnitGigawattHour  Unit = "GWh"
	UnitTerawattHour  Unit = "TWh"
	UnitCalorie       Unit = "cal"
	UnitKilocalorie   Unit = "kcal"
	UnitMegacalorie   Unit = "Mcal"
	UnitGigacalorie   Unit = "Gcal"
)

// Pressure
const (
	UnitPascal              Unit = "Pa"
	UnitHectopascal         Unit = "hPa"
	UnitKilopascal          Unit = "kPa"
	UnitBar                 Unit = "bar"
	UnitCentibar            Unit = "cbar"
	UnitMillibar            Unit = "mbar"
	UnitMillimeterOfMercury Unit = "mmHg"
	UnitInchOfMercury       Unit = "inHg"
	UnitPSI                 Unit = "psi"
)

// Mass
const (
	UnitKilogram  Unit = "kg"
	UnitGram      Unit = "g"
	UnitMilligram Unit = "mg"
	UnitMicrogram Unit = "µg"
	UnitOunce     Unit = "oz"
	UnitPound     Unit = "lb"
	UnitStone     Unit = "st"
)

// Concentration
const (
	UnitMicrogramsPerCubicMeter Unit = "µg/m³"
	UnitMilligramsPerDeciliter  Unit = "mg/dL"
	UnitMillimolePerLiter       Unit = "mmol/L"
	UnitPerMilliliter           Unit = "/mL"
	UnitPerDeciliter            Unit = "/dL"
	UnitPerLiter                Unit = "/L"
)

// Light
const (
	UnitLux                  Unit = "lx"
	UnitWattsPerSquareMeter  Unit = "W/m²"
	UnitBTUPerHourSquareFoot Unit = "BTU/(h⋅ft²)"
)

// Length
const (
	UnitKilometer    Unit = "km"
	UnitMeter        Unit = "m"
	UnitCentimeter   Unit = "cm"
	UnitMillimeter   Unit = "mm"
	UnitMile         Unit = "mi"
	UnitNauticalMile Unit = "nmi"
	UnitYard         Unit = "yd"
	UnitInch         Unit = "in"
)

// Area
const (
	UnitSquareMeter      Unit = "m²"
	UnitSquareCentimeter Unit = "cm²"
	UnitSquareKilometer  Unit = "km²"
	UnitSquareMillimeter Unit = "mm²"
	UnitSquareInch       Unit = "in²"
	UnitSquareFoot       Unit = "ft²"
	UnitSquareYard       Unit = "yd²"
	UnitSquareMile       Unit = "mi²"
	UnitAcre             Unit = "ac"
	UnitHectare          Unit = "ha"
)

// Volume
const (
	UnitLiter           Unit = "L"
	UnitMilliliter      Unit = "mL"
	UnitGallon          Unit = "gal"
	UnitFluidOunce      Unit = "fl. oz."
	UnitCubicMeter      Unit = "m³"
	UnitCubicFoot       Unit = "ft³"
	UnitCentumCubicFoot Unit = "CCF"
)

// Flow
const (
	UnitCubicMetersPerHour   Unit = "m³/h"
	UnitCubicFeetPerMinute   Unit = "ft³/min"
	UnitLitersPerMinute      Unit = "L/min"
	UnitGallonsPerMinute     Unit = "gal/min"
	UnitMillilitersPerSecond Unit = "mL/s"
)

// Time
const (
	UnitDay         Unit = "d"
	UnitHour        Unit = "h"
	UnitMinute      Unit = "min"
	UnitSecond      Unit = "s"
	UnitMillisecond Unit = "ms"
)

// Frequency
const (
	UnitHertz     Unit = "Hz"
	UnitKilohertz Unit = "kHz"
	UnitMegahertz Unit = "MHz"
	UnitGigahertz Unit = "GHz"
)

// Speed
const (
	UnitFeetPerSecond        Unit = "ft/s"
	UnitInchesPerDay         Unit = "in/d"
	UnitInchesPerHour        Unit = "in/h"
	UnitInchesPerSecond      Unit = "in/s"
	UnitKilometersPerHour    Unit = "km/h"
	UnitKnot                 Unit = "kn"
	UnitMetersPerSecond      Unit = "m/s"
	UnitMilesPerHour         Unit = "mph"
	UnitMillimetersPerDay    Unit = "mm/d"
	UnitMillimetersPerHour   Unit = "mm/h"
	UnitMillimetersPerSecond Unit = "mm/s"
	UnitBeaufort             Unit = "Beaufort"
)

// Sound and signal
const (
	UnitDecibel          Unit = "dB"
	UnitDecibelMilliwatt Unit = "dBm"
	UnitDecibelA         Unit = "dBA"
)

// Data
const (
	UnitBit               Unit = "bit"
	UnitKilobit           Unit = "kbit"
	UnitMegabit           Unit = "Mbit"
	UnitGigabit           Unit = "Gbit"
	UnitByte              Unit = "B"
	UnitKilobyte          Unit = "kB"
	UnitMegabyte          Unit = "MB"
	UnitGigabyte          Unit = "GB"
	UnitTerabyte          Unit = "TB"
	UnitPetabyte          Unit = "PB"
	UnitExabyte           Unit = "EB"
	UnitZettabyte         Unit = "ZB"
	UnitYottabyte         Unit = "YB"
	UnitKibibyte          Unit = "KiB"
	UnitMebibyte          Unit = "MiB"
	UnitGibibyte          Unit = "GiB"
	UnitTebibyte          Unit = "TiB"
	UnitPebibyte          Unit = "PiB"
	UnitExbibyte          Unit = "EiB"
	UnitZebibyte          Unit = "ZiB"
	UnitYobibyte          Unit = "YiB"
	UnitBitPerSecond      Unit = "bit/s"
	UnitKilobitPerSecond  Unit = "kbit/s"
	UnitMegabitPerSecond  Unit = "Mbit/s"
	UnitGigabitPerSecond  Unit = "Gbit/s"
	UnitBytePerSecond     Unit = "B/s"
	UnitKilobytePerSecond Unit = "kB/s"
	UnitMegabytePerSecond Unit = "MB/s"
	UnitGigabytePerSecond Unit = "GB/s"
	UnitKibibytePerSecond Unit = "KiB/s"
	UnitMebibytePerSecond Unit = "MiB/s"
	UnitGibibytePerSecond Unit = "GiB/s"
)

package alphaess

// System is one registered storage system as returned by getEssList.
type System struct {
	SysSN           string  `json:"sysSn"`
	SysName         string  `json:"sysName,omitempty"`
	EMSStatus       string  `json:"emsStatus,omitempty"`
	PVCapacity      float64 `json:"popv,omitempty"`
	InverterModel   string  `json:"minv,omitempty"`
	InverterPower   float64 `json:"poinv,omitempty"`
	BatteryModel    string  `json:"mbat,omitempty"`
	BatteryCapacity float64 `json:"cobat,omitempty"`
	UsableCapacity  float64 `json:"usCapacity,omitempty"`
}

// PVDetail holds per-string PV power in watts.
type PVDetail struct {
	PPV1 float64 `json:"ppv1"`
	PPV2 float64 `json:"ppv2"`
	PPV3 float64 `json:"ppv3"`
	PPV4 float64 `json:"ppv4"`
}

// GridDetail holds per-phase grid meter power in watts.
type GridDetail struct {
	PMeterL1 float64 `json:"pmeterL1"`
	PMeterL2 float64 `json:"pmeterL2"`
	PMeterL3 float64 `json:"pmeterL3"`
}

// EVDetail holds per-charger power in watts.
type EVDetail struct {
	EV1Power float64 `json:"ev1Power"`
	EV2Power float64 `json:"ev2Power"`
	EV3Power float64 `json:"ev3Power"`
	EV4Power float64 `json:"ev4Power"`
}

// LastPowerData is the live snapshot returned by getLastPowerData.
// pbat is positive while charging, pgrid positive while importing.
type LastPowerData struct {
	PPV         float64    `json:"ppv"`
	PLoad       float64    `json:"pload"`
	SOC         float64    `json:"soc"`
	PGrid       float64    `json:"pgrid"`
	PBat        float64    `json:"pbat"`
	PEV         float64    `json:"pev"`
	PRealL1     float64    `json:"prealL1"`
	PRealL2     float64    `json:"prealL2"`
	PRealL3     float64    `json:"prealL3"`
	PPVDetail   PVDetail   `json:"ppvDetail"`
	PGridDetail GridDetail `json:"pgridDetail"`
	PEVDetail   EVDetail   `json:"pevDetail"`
}

// PowerRecord is one 10-minute sample of the one-day power series returned
// by getOneDayPowerBySn.
type PowerRecord struct {
	SysSN         string  `json:"sysSn,omitempty"`
	UploadTime    string  `json:"uploadTime"`
	PPV           float64 `json:"ppv"`
	Load          float64 `json:"load"`
	CBat          float64 `json:"cbat"`
	FeedIn        float64 `json:"feedIn"`
	GridCharge    float64 `json:"gridCharge"`
	PChargingPile float64 `json:"pchargingPile"`
}

// EnergyData is the per-date energy report returned by getOneDateEnergyBySn.
// All values are kWh.
type EnergyData struct {
	SysSN         string  `json:"sysSn,omitempty"`
	TheDate       string  `json:"theDate,omitempty"`
	EPV           float64 `json:"epv"`
	ECharge       float64 `json:"eCharge"`
	EDischarge    float64 `json:"eDischarge"`
	EGridCharge   float64 `json:"eGridCharge"`
	EInput        float64 `json:"eInput"`
	EOutput       float64 `json:"eOutput"`
	EChargingPile float64 `json:"eChargingPile"`
}

// SumData is the aggregate statistics report returned by getSumDataForCustomer.
type SumData struct {
	EPVToday        float64 `json:"epvtoday"`
	EPVTotal        float64 `json:"epvtotal"`
	ELoad           float64 `json:"eload"`
	EOutput         float64 `json:"eoutput"`
	EInput          float64 `json:"einput"`
	ECharge         float64 `json:"echarge"`
	EDischarge      float64 `json:"edischarge"`
	SelfConsumption float64 `json:"eselfConsumption"`
	SelfSufficiency float64 `json:"eselfSufficiency"`
	TodayIncome     float64 `json:"todayIncome"`
	TotalIncome     float64 `json:"totalIncome"`
	MoneyType       string  `json:"moneyType,omitempty"`
	CarbonNum       float64 `json:"carbonNum,omitempty"`
	TreeNum         float64 `json:"treeNum,omitempty"`
}

// ChargeConfig mirrors the grid-charge schedule of getChargeConfigInfo and
// updateChargeConfigInfo. gridCharge is 1 when charging from grid is enabled,
// batHighCap the SOC percentage at which charging stops.
type ChargeConfig struct {
	SysSN      string  `json:"sysSn,omitempty"`
	GridCharge int     `json:"gridCharge"`
	TimeChaF1  string  `json:"timeChaf1"`
	TimeChaE1  string  `json:"timeChae1"`
	TimeChaF2  string  `json:"timeChaf2"`
	TimeChaE2  string  `json:"timeChae2"`
	BatHighCap float64 `json:"batHighCap"`
}

// DischargeConfig mirrors the discharge schedule of getDisChargeConfigInfo
// and updateDisChargeConfigInfo. ctrDis is 1 when timed discharge is enabled,
// batUseCap the SOC percentage at which discharging stops.
type DischargeConfig struct {
	SysSN     string  `json:"sysSn,omitempty"`
	CtrDis    int     `json:"ctrDis"`
	TimeDisF1 string  `json:"timeDisf1"`
	TimeDisE1 string  `json:"timeDise1"`
	TimeDisF2 string  `json:"timeDisf2"`
	TimeDisE2 string  `json:"timeDise2"`
	BatUseCap float64 `json:"batUseCap"`
}

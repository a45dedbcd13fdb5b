package mine_config

const ChanSize = 8

const MAXCpuNum = 16

const GinPort = "19123"

// 阈值默认值
const (
	Support    = 0.1
	Confidence = 0.6
)

// 事务的字段,固定6列,顺序固定
const (
	FieldBorough = iota
	FieldTimePeriod
	FieldFineTier
	FieldVehicleClass
	FieldViolationCode
	FieldViolationDesc
	FieldNum
)

// 项标签的拼接规则
const (
	ItemConn        = "_"
	ViolationPrefix = "Violation_"
)

// 罚款档位
const (
	LowFine    = "Low Fine"
	MediumFine = "Medium Fine"
	HighFine   = "High Fine"
)

// 时段
const (
	Morning     = "Morning"
	Afternoon   = "Afternoon"
	Evening     = "Evening"
	Night       = "Night"
	UnknownTime = "Unknown Time"
)

// 车辆类型
const (
	SedanVehicle   = "Sedan"
	SuvVehicle     = "SUV"
	PickupVehicle  = "Pickup"
	VanVehicle     = "Van"
	OtherVehicle   = "Other Vehicle"
	UnknownVehicle = "Unknown Vehicle"
)

// 输出
const (
	DefaultOutput = "output.txt"
	ResultDir     = "result"
)

// 并发分片的最小任务量,低于该值不再拆分
const (
	MinCandidatePartition = 64
)

package errcode

// 错误码约定：
// - 0：无错误
// - 4xxx：请求或业务校验类错误
// - 5xxx：系统错误（导出流程中断）
const (
	OK              = 0
	InvalidRequest  = 4000
	InvalidDocument = 4001
	NotFound        = 4004
	UnknownFormat   = 4015
	SystemError     = 5000
	ExportFailed    = 5001
	StorageFailed   = 5002
)

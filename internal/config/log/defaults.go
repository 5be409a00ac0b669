package log

import (
	"go.uber.org/zap/zapcore"
)

// 日志配置默认值
// 面向命令行工具的使用形态，默认值比常驻服务更克制
const (
	// === 基础日志配置 ===

	// defaultLogLevel 默认日志级别设为"info"
	// 原因：info级别平衡了信息量和性能，记录重要事件但不过于详细
	defaultLogLevel = "info"

	// defaultToConsole 默认启用控制台输出
	// 原因：工具以交互方式运行为主，控制台输出提供即时反馈
	defaultToConsole = true

	// defaultFilePath 默认日志文件路径
	// 原因：集中在工作目录下的logs子目录，便于清理和排查
	defaultFilePath = "logs/scriptkit.log"

	// === 日志轮转配置 ===

	// defaultMaxSize 单个日志文件最大大小设为50MB
	// 原因：工具型进程日志量有限，50MB已能覆盖长时间的使用记录
	defaultMaxSize = 50

	// defaultMaxBackups 最大备份文件数设为5
	// 原因：保留5个备份文件足够回溯近期的问题，避免磁盘浪费
	defaultMaxBackups = 5

	// defaultMaxAge 日志文件最大保留天数设为14天
	// 原因：两周覆盖了大多数问题排查的时间窗口
	defaultMaxAge = 14

	// defaultCompress 默认启用历史日志压缩
	// 原因：压缩可以显著减少磁盘空间占用，计算成本可以接受
	defaultCompress = true

	// === 调试配置 ===

	// defaultEnableCaller 默认启用调用者信息
	// 原因：调用者信息对于定位问题非常重要，开销可以接受
	defaultEnableCaller = true

	// defaultEnableStacktrace 默认对Error级别启用堆栈跟踪
	// 原因：堆栈跟踪对错误诊断至关重要，只在Error级别启用避免过度开销
	defaultEnableStacktrace = true
)

// 默认的日志级别映射
var defaultLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"panic": zapcore.PanicLevel,
	"fatal": zapcore.FatalLevel,
}

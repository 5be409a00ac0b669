// Package script 提供脚本相关功能
package script

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	log "github.com/weisyn/scriptkit/pkg/interfaces/infrastructure/log"
	scriptintf "github.com/weisyn/scriptkit/pkg/interfaces/infrastructure/script"
	"github.com/weisyn/scriptkit/pkg/types"
)

// ScriptParams 定义脚本模块的依赖参数
type ScriptParams struct {
	fx.In

	Logger   log.Logger            `optional:"true"` // 日志记录器
	Networks []types.NetworkParams `optional:"true"` // 网络参数集（为空时使用内置集合）
}

// ScriptOutput 定义脚本模块的输出结构
type ScriptOutput struct {
	fx.Out

	// 各个子服务 - 无命名以支持无名注入
	NetworkRegistry scriptintf.NetworkRegistry
	ScriptCodec     scriptintf.ScriptCodec
	TemplateEngine  scriptintf.TemplateEngine
	AddressCodec    scriptintf.AddressCodec
	WIFCodec        scriptintf.WIFCodec
}

// Module 返回脚本模块
func Module() fx.Option {
	return fx.Module("script",
		// 提供脚本服务
		fx.Provide(ProvideScriptServices),
	)
}

// ProvideScriptServices 提供脚本服务
func ProvideScriptServices(params ScriptParams) (ScriptOutput, error) {
	serviceInput := ServiceInput{
		Logger:   params.Logger,
		Networks: params.Networks,
	}

	serviceOutput, err := CreateScriptServices(serviceInput)
	if err != nil {
		return ScriptOutput{}, err
	}

	return ScriptOutput{
		NetworkRegistry: serviceOutput.NetworkRegistry,
		ScriptCodec:     serviceOutput.ScriptCodec,
		TemplateEngine:  serviceOutput.TemplateEngine,
		AddressCodec:    serviceOutput.AddressCodec,
		WIFCodec:        serviceOutput.WIFCodec,
	}, nil
}

// noopLogger 是一个无操作的Logger实现，用于可选Logger为nil时的回退
type noopLogger struct{}

func (l *noopLogger) Debug(msg string)                          {}
func (l *noopLogger) Debugf(format string, args ...interface{}) {}
func (l *noopLogger) Info(msg string)                           {}
func (l *noopLogger) Infof(format string, args ...interface{})  {}
func (l *noopLogger) Warn(msg string)                           {}
func (l *noopLogger) Warnf(format string, args ...interface{})  {}
func (l *noopLogger) Error(msg string)                          {}
func (l *noopLogger) Errorf(format string, args ...interface{}) {}
func (l *noopLogger) Fatal(msg string)                          {}
func (l *noopLogger) Fatalf(format string, args ...interface{}) {}
func (l *noopLogger) With(keyvals ...interface{}) log.Logger    { return l }
func (l *noopLogger) Sync() error                               { return nil }
func (l *noopLogger) GetZapLogger() *zap.Logger                 { return nil }

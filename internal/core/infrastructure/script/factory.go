// Package script 提供脚本服务工厂实现
package script

import (
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/address"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/codec"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/netparams"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/template"
	scriptintf "github.com/weisyn/scriptkit/pkg/interfaces/infrastructure/script"
	log "github.com/weisyn/scriptkit/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/scriptkit/pkg/types"
)

// ServiceInput 定义脚本服务工厂的输入参数
type ServiceInput struct {
	Logger   log.Logger           `optional:"true"`
	Networks []types.NetworkParams `optional:"true"`
}

// ServiceOutput 定义脚本服务工厂的输出结果
type ServiceOutput struct {
	NetworkRegistry scriptintf.NetworkRegistry
	ScriptCodec     scriptintf.ScriptCodec
	TemplateEngine  scriptintf.TemplateEngine
	AddressCodec    scriptintf.AddressCodec
	WIFCodec        scriptintf.WIFCodec
}

// CreateScriptServices 创建脚本服务
//
// 🏭 **脚本服务工厂**：
// 该函数负责创建脚本模块的所有服务，处理服务间的依赖关系。
// 将服务创建逻辑从module.go中分离出来，保持module.go的薄实现。
//
// 参数：
//   - input: 服务创建所需的输入参数
//
// 返回：
//   - ServiceOutput: 创建的服务实例集合
//   - error: 创建过程中的错误
func CreateScriptServices(input ServiceInput) (ServiceOutput, error) {
	// 初始化日志（处理可选Logger）
	var logger log.Logger
	if input.Logger != nil {
		logger = input.Logger.With("module", "script")
		logger.Info("初始化脚本模块")
	} else {
		// 创建no-op logger作为回退
		logger = &noopLogger{}
	}

	// 创建网络注册表（未指定网络时使用内置mainnet+testnet）
	var registry *netparams.Registry
	if len(input.Networks) > 0 {
		var err error
		registry, err = netparams.New(input.Networks...)
		if err != nil {
			logger.Errorf("初始化网络注册表失败: %v", err)
			return ServiceOutput{}, err
		}
	} else {
		registry = netparams.Default()
	}
	logger.Info("网络注册表已初始化")

	// 创建脚本编解码服务
	scriptCodec := codec.New()
	logger.Info("脚本编解码服务已初始化")

	// 创建模板引擎服务
	templateEngine := template.New()
	logger.Info("模板引擎服务已初始化")

	// 创建地址服务（需要注册表依赖）
	addressCodec := address.New(registry)
	logger.Info("地址服务已初始化")

	// 创建WIF私钥服务（需要注册表依赖）
	wifCodec := address.NewWIF(registry)
	logger.Info("WIF私钥服务已初始化")

	logger.Info("✅ 脚本模块所有服务初始化完成")

	return ServiceOutput{
		NetworkRegistry: registry,
		ScriptCodec:     scriptCodec,
		TemplateEngine:  templateEngine,
		AddressCodec:    addressCodec,
		WIFCodec:        wifCodec,
	}, nil
}

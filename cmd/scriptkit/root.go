package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	logpkg "github.com/weisyn/scriptkit/internal/core/infrastructure/log"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/netparams"
	scriptintf "github.com/weisyn/scriptkit/pkg/interfaces/infrastructure/script"
	"github.com/weisyn/scriptkit/pkg/types"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	Network string // 目标网络名称
	Verbose bool   // 输出服务初始化日志
}

var (
	globalFlags GlobalFlags
	netRegistry scriptintf.NetworkRegistry
	currentNet  types.NetworkParams
	scripts     scriptintf.TemplateEngine
	addresses   scriptintf.AddressCodec
	wifCodec    scriptintf.WIFCodec
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "scriptkit",
	Short: "ScriptKit 脚本与地址命令行工具",
	Long: `ScriptKit CLI - 锁定脚本与地址的编解码工具

围绕八类标准锁定脚本模板（p2pk、p2pkh、p2sh、p2wpkh、p2wsh、
p2ms、nulldata、unknown）提供归类、构造、地址换算和WIF私钥
编解码能力。

使用方式:
  scriptkit script decode <hex>        # 归类锁定脚本并还原地址
  scriptkit script encode --type ...   # 从类型和载荷构造锁定脚本
  scriptkit addr decode <address>      # 解码地址
  scriptkit addr script <address>      # 由地址推导锁定脚本
  scriptkit wif decode                 # 解码WIF私钥（交互输入）
  scriptkit wif encode                 # 编码WIF私钥（交互输入）

所有命令默认工作在主网，可通过 --network 切换网络。`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		input := script.ServiceInput{}

		// regtest与testnet共享Base58版本字节，反向解析时无法
		// 区分，因此选择regtest时注册表由mainnet+regtest组成
		if globalFlags.Network == netparams.RegTest.Name {
			input.Networks = []types.NetworkParams{netparams.MainNet, netparams.RegTest}
		}

		if globalFlags.Verbose {
			logger, err := logpkg.NewLoggerFromConfig("debug", "stderr", false, false)
			if err != nil {
				return fmt.Errorf("初始化日志: %w", err)
			}
			input.Logger = logger
		}

		output, err := script.CreateScriptServices(input)
		if err != nil {
			return fmt.Errorf("初始化脚本服务: %w", err)
		}

		net, ok := output.NetworkRegistry.ByName(globalFlags.Network)
		if !ok {
			return fmt.Errorf("unknown network: %s", globalFlags.Network)
		}

		netRegistry = output.NetworkRegistry
		currentNet = *net
		scripts = output.TemplateEngine
		addresses = output.AddressCodec
		wifCodec = output.WIFCodec

		return nil
	},
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// 全局标志
	rootCmd.PersistentFlags().StringVarP(&globalFlags.Network, "network", "n", "mainnet", "目标网络: mainnet|testnet|regtest")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "输出服务初始化日志")

	// 添加子命令
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(addrCmd)
	rootCmd.AddCommand(wifCmd)
}

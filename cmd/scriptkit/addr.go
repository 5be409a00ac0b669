package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/segwit"
	"github.com/weisyn/scriptkit/pkg/types"
)

// addrCmd 地址相关命令
var addrCmd = &cobra.Command{
	Use:   "addr",
	Short: "地址编解码",
	Long:  "解码Base58Check与Bech32地址，或由地址推导锁定脚本",
}

// addrDecodeCmd 解码地址
var addrDecodeCmd = &cobra.Command{
	Use:   "decode <address>",
	Short: "解码地址",
	Long: `解码地址并输出网络、载荷等信息。

Base58Check地址输出版本字节与Hash160，
隔离见证地址输出见证版本与见证程序。

示例:
  scriptkit addr decode 1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs
  scriptkit addr decode bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := strings.TrimSpace(args[0])

		if segwit.HasSegwitPrefix(netRegistry, addr) {
			witness, err := addresses.ToWitness(addr)
			if err != nil {
				return err
			}

			fmt.Printf("网络: %s\n", witness.Network.Name)
			fmt.Printf("见证版本: %d\n", witness.Version)
			fmt.Printf("见证程序: %x\n", witness.Program)
			if witness.Version == 0 {
				kind := types.ScriptTypeP2WPKH
				if witness.IsScriptHash {
					kind = types.ScriptTypeP2WSH
				}
				fmt.Printf("类型: %s\n", kind)
			}
			return nil
		}

		decoded, err := addresses.ToHash160(addr)
		if err != nil {
			return err
		}

		kind := types.ScriptTypeP2PKH
		if decoded.IsScriptHash {
			kind = types.ScriptTypeP2SH
		}

		fmt.Printf("网络: %s\n", decoded.Network.Name)
		fmt.Printf("版本字节: 0x%02x\n", decoded.Prefix)
		fmt.Printf("Hash160: %x\n", decoded.Hash160)
		fmt.Printf("类型: %s\n", kind)
		return nil
	},
}

// addrScriptCmd 由地址推导锁定脚本
var addrScriptCmd = &cobra.Command{
	Use:   "script <address>",
	Short: "由地址推导锁定脚本",
	Long: `由地址推导对应的锁定脚本。

示例:
  scriptkit addr script 1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, net, err := addresses.ToScriptPubKey(strings.TrimSpace(args[0]))
		if err != nil {
			return err
		}

		info, err := scripts.Classify(script)
		if err != nil {
			return err
		}

		fmt.Printf("网络: %s\n", net.Name)
		fmt.Printf("类型: %s\n", info.Type)
		fmt.Printf("脚本: %x\n", script)
		return nil
	},
}

func init() {
	addrCmd.AddCommand(addrDecodeCmd)
	addrCmd.AddCommand(addrScriptCmd)
}

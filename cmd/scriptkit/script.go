package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/weisyn/scriptkit/pkg/types"
)

var (
	scriptType    string
	scriptPayload string
)

// scriptCmd 锁定脚本相关命令
var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "锁定脚本归类与构造",
	Long:  "归类锁定脚本、提取载荷、还原地址，或从模板类型和载荷构造锁定脚本",
}

// scriptDecodeCmd 归类锁定脚本
var scriptDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "归类锁定脚本",
	Long: `归类十六进制锁定脚本并提取载荷。

可还原地址的模板（p2pkh、p2sh、p2wpkh、p2wsh）同时输出地址，
p2ms额外枚举各公钥对应的p2pkh地址。

示例:
  scriptkit script decode 76a91412ab8dc588ca9d5787dde7eb29569da63c3a238c88ac`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := hex.DecodeString(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("解析脚本hex: %w", err)
		}

		info, err := scripts.Classify(script)
		if err != nil {
			return err
		}

		fmt.Printf("类型: %s\n", info.Type)
		fmt.Printf("载荷: %x\n", info.Payload)

		addr, err := addresses.FromScriptPubKey(script, currentNet)
		if err != nil {
			return err
		}
		if addr != "" {
			fmt.Printf("地址: %s\n", addr)
		}

		if info.Type == types.ScriptTypeP2MS {
			list, err := addresses.AddressList(script, currentNet)
			if err != nil {
				return err
			}
			for i, keyAddr := range list {
				fmt.Printf("公钥地址 %d: %s\n", i+1, keyAddr)
			}
		}

		return nil
	},
}

// scriptEncodeCmd 构造锁定脚本
var scriptEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "构造锁定脚本",
	Long: `从模板类型和载荷构造锁定脚本。

载荷为十六进制：p2pk为公钥，p2pkh/p2wpkh为20字节哈希，
p2sh为20字节哈希，p2wsh为32字节哈希，nulldata为任意数据
（至多80字节），p2ms为去掉OP_CHECKMULTISIG的脚本体。

示例:
  scriptkit script encode --type p2pkh --payload 12ab8dc588ca9d5787dde7eb29569da63c3a238c`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if scriptType == "" {
			return fmt.Errorf("请通过 --type 指定模板类型")
		}
		if scriptPayload == "" {
			return fmt.Errorf("请通过 --payload 指定载荷")
		}

		payload, err := hex.DecodeString(strings.TrimSpace(scriptPayload))
		if err != nil {
			return fmt.Errorf("解析载荷hex: %w", err)
		}

		script, err := scripts.FromTypeAndPayload(types.ScriptType(scriptType), payload)
		if err != nil {
			return err
		}

		fmt.Printf("脚本: %x\n", script)

		addr, err := addresses.FromScriptPubKey(script, currentNet)
		if err != nil {
			return err
		}
		if addr != "" {
			fmt.Printf("地址: %s\n", addr)
		}

		return nil
	},
}

func init() {
	scriptCmd.AddCommand(scriptDecodeCmd)
	scriptCmd.AddCommand(scriptEncodeCmd)

	// scriptEncodeCmd 标志
	scriptEncodeCmd.Flags().StringVarP(&scriptType, "type", "t", "", "模板类型: p2pk|p2pkh|p2sh|p2wpkh|p2wsh|p2ms|nulldata")
	scriptEncodeCmd.Flags().StringVarP(&scriptPayload, "payload", "p", "", "载荷（十六进制）")
}

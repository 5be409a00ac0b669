package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"syscall"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/weisyn/scriptkit/pkg/types"
)

var wifCompressed bool

// wifCmd WIF私钥相关命令
var wifCmd = &cobra.Command{
	Use:   "wif",
	Short: "WIF私钥编解码",
	Long:  "编码和解码WIF格式私钥，私钥通过交互输入，不出现在命令行参数中",
}

// wifDecodeCmd 解码WIF私钥
var wifDecodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "解码WIF私钥",
	Long: `解码WIF私钥并输出网络、压缩标记和对应地址。

WIF字符串通过交互方式输入（不回显），避免私钥进入
命令行历史。网络由WIF版本字节自动识别。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wif, err := promptSecret("请输入WIF私钥")
		if err != nil {
			return err
		}

		info, err := wifCodec.Decode(wif)
		if err != nil {
			return err
		}

		compressed := "否"
		if info.Compressed {
			compressed = "是"
		}

		fmt.Printf("网络: %s\n", info.Network.Name)
		fmt.Printf("压缩公钥: %s\n", compressed)
		fmt.Printf("私钥: %x\n", info.Key[:])

		return printKeyAddresses(info.Key[:], *info.Network, info.Compressed)
	},
}

// wifEncodeCmd 编码WIF私钥
var wifEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "编码WIF私钥",
	Long: `将十六进制私钥编码为WIF格式。

私钥通过交互方式输入（不回显）。目标网络由 --network
指定，压缩标记由 --compressed 控制。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keyHex, err := promptSecret("请输入私钥（十六进制）")
		if err != nil {
			return err
		}

		key, err := hex.DecodeString(strings.TrimSpace(keyHex))
		if err != nil {
			return fmt.Errorf("解析私钥hex: %w", err)
		}

		wif, err := wifCodec.Encode(key, currentNet, wifCompressed)
		if err != nil {
			return err
		}

		fmt.Printf("网络: %s\n", currentNet.Name)
		fmt.Printf("WIF: %s\n", wif)

		return printKeyAddresses(key, currentNet, wifCompressed)
	},
}

// promptSecret 提示输入敏感内容（不回显）
func promptSecret(prompt string) (string, error) {
	fmt.Print(prompt + ": ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("读取输入失败: %w", err)
	}
	fmt.Println()
	return string(raw), nil
}

// printKeyAddresses 输出私钥对应的各形态地址
//
// 压缩公钥输出p2pkh、p2wpkh和p2wpkh-p2sh三种形态，
// 非压缩公钥只有p2pkh形态
func printKeyAddresses(key []byte, net types.NetworkParams, compressed bool) error {
	_, pub := btcec.PrivKeyFromBytes(key)

	if !compressed {
		addr, err := addresses.P2PKH(pub.SerializeUncompressed(), net)
		if err != nil {
			return err
		}
		fmt.Printf("P2PKH地址: %s\n", addr)
		return nil
	}

	pubKey := pub.SerializeCompressed()

	p2pkh, err := addresses.P2PKH(pubKey, net)
	if err != nil {
		return err
	}
	p2wpkh, err := addresses.P2WPKH(pubKey, net)
	if err != nil {
		return err
	}
	wrapped, err := addresses.P2WPKHP2SH(pubKey, net)
	if err != nil {
		return err
	}

	fmt.Printf("P2PKH地址: %s\n", p2pkh)
	fmt.Printf("P2WPKH地址: %s\n", p2wpkh)
	fmt.Printf("P2WPKH-P2SH地址: %s\n", wrapped)
	return nil
}

// Package segwit 提供隔离见证地址的Bech32/Bech32m编解码
//
// 版本0使用Bech32校验和，版本1及以上使用Bech32m；解码时校验和
// 变体与版本不匹配一律拒绝。见证程序的版本与长度规则由
// CheckWitness统一执行。
package segwit

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/weisyn/scriptkit/pkg/types"
)

// 见证程序长度边界
const (
	minProgramSize = 2
	maxProgramSize = 40
)

// CheckWitness 校验见证版本与程序长度
// 版本必须在0..16之间；程序长度必须在2..40字节之间；
// 版本0要求20或32字节，版本1要求32字节
func CheckWitness(version int, program []byte) error {
	if version < 0 || version > 16 {
		return fmt.Errorf("%w: invalid witness version: %d", types.ErrInvalidStructure, version)
	}
	length := len(program)
	if length < minProgramSize || length > maxProgramSize {
		return fmt.Errorf("%w: invalid witness program length: %d", types.ErrInvalidStructure, length)
	}
	if version == 0 && length != 20 && length != 32 {
		return fmt.Errorf("%w: invalid witness program length for witness v0: %d", types.ErrInvalidStructure, length)
	}
	if version == 1 && length != 32 {
		return fmt.Errorf("%w: invalid witness program length for witness v1: %d", types.ErrInvalidStructure, length)
	}
	return nil
}

// EncodeAddress 将见证程序编码为隔离见证地址
func EncodeAddress(hrp string, version int, program []byte) (string, error) {
	if err := CheckWitness(version, program); err != nil {
		return "", err
	}

	// 8比特转5比特，允许尾部填充
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrInvalidStructure, err)
	}

	data := make([]byte, 0, len(converted)+1)
	data = append(data, byte(version))
	data = append(data, converted...)

	var addr string
	if version == 0 {
		addr, err = bech32.Encode(hrp, data)
	} else {
		addr, err = bech32.EncodeM(hrp, data)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrInvalidStructure, err)
	}
	return addr, nil
}

// DecodeAddress 解码隔离见证地址
// 返回人类可读前缀、见证版本与见证程序
func DecodeAddress(addr string) (string, int, []byte, error) {
	addr = strings.TrimSpace(addr)

	hrp, data, bechVersion, err := bech32.DecodeGeneric(addr)
	if err != nil {
		return "", 0, nil, fmt.Errorf("%w: %v", types.ErrMalformedEncoding, err)
	}
	if len(data) == 0 {
		return "", 0, nil, fmt.Errorf("%w: empty witness data section", types.ErrMalformedEncoding)
	}

	version := int(data[0])
	if version > 16 {
		return "", 0, nil, fmt.Errorf("%w: invalid witness version: %d", types.ErrInvalidStructure, version)
	}

	// 校验和变体必须与见证版本匹配
	if version == 0 && bechVersion != bech32.Version0 {
		return "", 0, nil, fmt.Errorf("%w: witness version 0 requires bech32 checksum", types.ErrMalformedEncoding)
	}
	if version >= 1 && bechVersion != bech32.VersionM {
		return "", 0, nil, fmt.Errorf("%w: witness version %d requires bech32m checksum", types.ErrMalformedEncoding, version)
	}

	// 5比特转8比特，不允许填充位
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return "", 0, nil, fmt.Errorf("%w: %v", types.ErrMalformedEncoding, err)
	}

	if err := CheckWitness(version, program); err != nil {
		return "", 0, nil, err
	}
	return hrp, version, program, nil
}

// NetworkLister 提供已注册网络的枚举能力
type NetworkLister interface {
	Networks() []types.NetworkParams
}

// HasSegwitPrefix 检查地址是否带有注册表中任一网络的隔离见证前缀
// 前缀形如 hrp + "1"，比较前先转小写
func HasSegwitPrefix(registry NetworkLister, addr string) bool {
	lowered := strings.ToLower(strings.TrimSpace(addr))
	for _, net := range registry.Networks() {
		if strings.HasPrefix(lowered, strings.ToLower(net.Bech32HRP)+"1") {
			return true
		}
	}
	return false
}

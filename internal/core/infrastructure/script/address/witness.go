package address

import (
	"fmt"

	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/codec"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/digest"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/segwit"
	"github.com/weisyn/scriptkit/pkg/types"
)

// FromWitness 从见证程序构造隔离见证地址
func (c *Codec) FromWitness(version int, program []byte, net types.NetworkParams) (string, error) {
	return segwit.EncodeAddress(net.Bech32HRP, version, program)
}

// ToWitness 解码隔离见证地址
// HRP在注册表内反向解析；在册的全部版本都接受，不处理某版本的
// 上层自行拒绝
func (c *Codec) ToWitness(addr string) (types.WitnessProgram, error) {
	hrp, version, program, err := segwit.DecodeAddress(addr)
	if err != nil {
		return types.WitnessProgram{}, err
	}

	net, ok := c.registry.FromHRP(hrp)
	if !ok {
		return types.WitnessProgram{}, fmt.Errorf("%w: invalid bech32 address hrp: %s",
			types.ErrUnknownNetworkOrPrefix, hrp)
	}

	return types.WitnessProgram{
		Version:      version,
		Program:      program,
		Network:      net,
		IsScriptHash: version == 0 && len(program) == 32,
	}, nil
}

// FromV0WitnessProgram 构造版本0见证程序的p2sh包裹地址
// 赎回脚本为 OP_0 <program> 的序列化形式，对其做HASH160后以p2sh
// 前缀编码
func (c *Codec) FromV0WitnessProgram(program []byte, net types.NetworkParams) (string, error) {
	if err := segwit.CheckWitness(0, program); err != nil {
		return "", err
	}

	redeemScript, err := codec.Serialize([]types.Command{
		types.IntCommand(0),
		types.PushCommand(program),
	})
	if err != nil {
		return "", err
	}

	return c.FromHash160(net.P2SHPrefix, digest.Hash160(redeemScript), net)
}

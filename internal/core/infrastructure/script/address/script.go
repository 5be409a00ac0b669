package address

import (
	"fmt"

	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/codec"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/segwit"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/template"
	"github.com/weisyn/scriptkit/pkg/types"
)

// FromScriptPubKey 从锁定脚本推导规范地址
// p2pkh/p2sh走Base58Check，p2wpkh/p2wsh走Bech32；其余类型没有
// 规范地址，返回空字符串
func (c *Codec) FromScriptPubKey(script []byte, net types.NetworkParams) (string, error) {
	info, err := template.Classify(script)
	if err != nil {
		return "", err
	}

	switch info.Type {
	case types.ScriptTypeP2PKH:
		return c.FromHash160(net.P2PKHPrefix, info.Payload, net)
	case types.ScriptTypeP2SH:
		return c.FromHash160(net.P2SHPrefix, info.Payload, net)
	case types.ScriptTypeP2WPKH, types.ScriptTypeP2WSH:
		return c.FromWitness(0, info.Payload, net)
	default:
		return "", nil
	}
}

// ToScriptPubKey 从地址反推锁定脚本
// 带隔离见证前缀的地址走见证路径，其余走Base58Check路径；
// 同时返回地址归属的网络
func (c *Codec) ToScriptPubKey(addr string) ([]byte, *types.NetworkParams, error) {
	if segwit.HasSegwitPrefix(c.registry, addr) {
		wit, err := c.ToWitness(addr)
		if err != nil {
			return nil, nil, err
		}
		if wit.Version != 0 {
			return nil, nil, fmt.Errorf("%w: unmanaged witness version: %d",
				types.ErrUnsupportedFeature, wit.Version)
		}
		script, err := codec.Serialize([]types.Command{
			types.IntCommand(0),
			types.PushCommand(wit.Program),
		})
		if err != nil {
			return nil, nil, err
		}
		return script, wit.Network, nil
	}

	decoded, err := c.ToHash160(addr)
	if err != nil {
		return nil, nil, err
	}

	scriptType := types.ScriptTypeP2PKH
	if decoded.IsScriptHash {
		scriptType = types.ScriptTypeP2SH
	}
	script, err := template.FromTypeAndPayload(scriptType, decoded.Hash160)
	if err != nil {
		return nil, nil, err
	}
	return script, decoded.Network, nil
}

// AddressList 枚举锁定脚本关联的全部地址
// p2ms返回每个内嵌公钥的p2pkh地址；可寻址类型返回单元素列表；
// 其余返回空列表
func (c *Codec) AddressList(script []byte, net types.NetworkParams) ([]string, error) {
	info, err := template.Classify(script)
	if err != nil {
		return nil, err
	}

	if info.Type == types.ScriptTypeP2MS {
		// 载荷形如 OP_m <keys...> OP_n，掐头去尾取公钥推送
		commands, err := codec.Parse(info.Payload)
		if err != nil {
			return nil, err
		}
		list := make([]string, 0, len(commands)-2)
		for _, cmd := range commands[1 : len(commands)-1] {
			addr, err := c.P2PKH(cmd.Data(), net)
			if err != nil {
				return nil, err
			}
			list = append(list, addr)
		}
		return list, nil
	}

	addr, err := c.FromScriptPubKey(script, net)
	if err != nil {
		return nil, err
	}
	if addr == "" {
		return nil, nil
	}
	return []string{addr}, nil
}

// Package address 提供地址与锁定脚本的双向翻译
//
// 传统地址走Base58Check路径，隔离见证地址走Bech32/Bech32m路径。
// 编码方向显式指定目标网络；解码方向通过注册表按版本字节或HRP
// 反向解析归属网络。
package address

import (
	"fmt"

	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/base58check"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/netparams"
	scriptintf "github.com/weisyn/scriptkit/pkg/interfaces/infrastructure/script"
	"github.com/weisyn/scriptkit/pkg/types"
)

// hash160Size 传统地址载荷的哈希长度
const hash160Size = 20

// Codec 地址编解码器
// 持有解码方向使用的网络注册表，构造后可被并发使用
type Codec struct {
	registry *netparams.Registry
}

// 接口实现声明
var _ scriptintf.AddressCodec = (*Codec)(nil)

// New 构造地址编解码器
func New(registry *netparams.Registry) *Codec {
	return &Codec{registry: registry}
}

// FromHash160 从20字节哈希构造传统地址
// 版本字节必须是目标网络的p2pkh或p2sh前缀
func (c *Codec) FromHash160(prefix byte, h160 []byte, net types.NetworkParams) (string, error) {
	if prefix != net.P2PKHPrefix && prefix != net.P2SHPrefix {
		return "", fmt.Errorf("%w: invalid %s base58 address prefix: 0x%02x",
			types.ErrUnknownNetworkOrPrefix, net.Name, prefix)
	}
	if len(h160) != hash160Size {
		return "", fmt.Errorf("%w: invalid hash160 length: %d", types.ErrInvalidStructure, len(h160))
	}

	payload := make([]byte, 0, 1+hash160Size)
	payload = append(payload, prefix)
	payload = append(payload, h160...)
	return base58check.Encode(payload), nil
}

// ToHash160 解码传统地址
// 版本字节先按p2pkh、再按p2sh在注册表内反向解析
func (c *Codec) ToHash160(addr string) (types.DecodedAddress, error) {
	payload, err := base58check.DecodeN(addr, 1+hash160Size)
	if err != nil {
		return types.DecodedAddress{}, err
	}

	prefix := payload[0]
	if net, ok := c.registry.FromP2PKHPrefix(prefix); ok {
		return types.DecodedAddress{
			Prefix:  prefix,
			Hash160: payload[1:],
			Network: net,
		}, nil
	}
	if net, ok := c.registry.FromP2SHPrefix(prefix); ok {
		return types.DecodedAddress{
			Prefix:       prefix,
			Hash160:      payload[1:],
			Network:      net,
			IsScriptHash: true,
		}, nil
	}

	return types.DecodedAddress{}, fmt.Errorf("%w: invalid base58 address prefix: 0x%02x",
		types.ErrUnknownNetworkOrPrefix, prefix)
}

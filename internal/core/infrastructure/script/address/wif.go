package address

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/base58check"
	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/netparams"
	scriptintf "github.com/weisyn/scriptkit/pkg/interfaces/infrastructure/script"
	"github.com/weisyn/scriptkit/pkg/types"
)

// 私钥载荷常量
const (
	privateKeySize    = 32
	compressionMarker = 0x01
)

// WIF 私钥的WIF编解码器
// 持有解码方向使用的网络注册表，构造后可被并发使用
type WIF struct {
	registry *netparams.Registry
}

// 接口实现声明
var _ scriptintf.WIFCodec = (*WIF)(nil)

// NewWIF 构造WIF编解码器
func NewWIF(registry *netparams.Registry) *WIF {
	return &WIF{registry: registry}
}

// Encode 将私钥标量编码为WIF文本
// 标量必须在 [1, n-1] 区间内；compressed控制是否追加压缩标记字节
func (w *WIF) Encode(key []byte, net types.NetworkParams, compressed bool) (string, error) {
	if len(key) != privateKeySize {
		return "", fmt.Errorf("%w: invalid private key length: %d", types.ErrInvalidStructure, len(key))
	}

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(key)
	zeroKey := scalar.IsZero()
	scalar.Zero()
	if overflow || zeroKey {
		return "", fmt.Errorf("%w: private key not in 1..n-1: %x", types.ErrInvalidStructure, key)
	}

	payload := make([]byte, 0, 1+privateKeySize+1)
	payload = append(payload, net.WIFPrefix)
	payload = append(payload, key...)
	if compressed {
		payload = append(payload, compressionMarker)
	}
	return base58check.Encode(payload), nil
}

// Decode 解码WIF文本
// 版本字节按注册表反向解析；载荷长度区分压缩与非压缩形态；
// 标量重新做区间检查
func (w *WIF) Decode(wif string) (types.PrivateKeyInfo, error) {
	payload, err := base58check.Decode(wif)
	if err != nil {
		return types.PrivateKeyInfo{}, err
	}
	if len(payload) == 0 {
		return types.PrivateKeyInfo{}, fmt.Errorf("%w: not a private key: empty payload", types.ErrInvalidStructure)
	}

	net, ok := w.registry.FromWIFPrefix(payload[0])
	if !ok {
		return types.PrivateKeyInfo{}, fmt.Errorf("%w: not a private key: unregistered wif prefix: 0x%02x",
			types.ErrUnknownNetworkOrPrefix, payload[0])
	}

	var compressed bool
	switch len(payload) {
	case 1 + privateKeySize + 1:
		if payload[len(payload)-1] != compressionMarker {
			return types.PrivateKeyInfo{}, fmt.Errorf("%w: not a private key: invalid trailing marker: 0x%02x",
				types.ErrInvalidStructure, payload[len(payload)-1])
		}
		compressed = true
	case 1 + privateKeySize:
		compressed = false
	default:
		return types.PrivateKeyInfo{}, fmt.Errorf("%w: not a private key: invalid payload length: %d",
			types.ErrInvalidStructure, len(payload))
	}

	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(payload[1 : 1+privateKeySize])
	zeroKey := scalar.IsZero()
	scalar.Zero()
	if overflow || zeroKey {
		return types.PrivateKeyInfo{}, fmt.Errorf("%w: not a private key: scalar not in 1..n-1", types.ErrInvalidStructure)
	}

	info := types.PrivateKeyInfo{Network: net, Compressed: compressed}
	copy(info.Key[:], payload[1:1+privateKeySize])
	return info, nil
}

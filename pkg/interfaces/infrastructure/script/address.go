// Package script 提供地址与WIF私钥的序列化接口定义
//
// 📍 **地址与私钥翻译器 (Address / WIF Translator)**
//
// 本文件定义了人类可读文本与链上载荷之间的翻译接口，专注于：
// - 传统地址：Base58Check编码的 p2pkh/p2sh 地址
// - 隔离见证地址：Bech32/Bech32m 编码的见证程序
// - 公钥派生：从公钥或脚本推导各形态地址
// - 脚本互转：地址与锁定脚本的双向翻译
// - WIF私钥：带网络版本字节与压缩标记的私钥文本编码
//
// 🎯 **核心功能**
// - AddressCodec：地址编解码与脚本互转
// - WIFCodec：私钥的WIF编解码
//
// 🏗️ **设计原则**
// - 网络显式传入：编码方向总是显式指定目标网络
// - 解码即归属：解码方向通过注册表反向解析网络
// - 校验严格：校验和、长度、版本字节全部验证，失败即拒绝
//
// 🔗 **组件关系**
// - AddressCodec：被钱包、浏览器、索引构建等上层使用
// - 与 NetworkRegistry：解码路径的前缀归属判定
// - 与 TemplateEngine：脚本到地址的类型判定
package script

import "github.com/weisyn/scriptkit/pkg/types"

// AddressCodec 定义地址编解码接口
type AddressCodec interface {
	// FromHash160 从20字节哈希构造传统地址
	//
	// 版本字节必须是目标网络的 p2pkh 或 p2sh 前缀。
	//
	// 参数：
	//   - prefix: 地址版本字节
	//   - h160: 20字节哈希
	//   - net: 目标网络参数
	//
	// 返回：
	//   - string: Base58Check地址
	//   - error: 前缀不属于该网络或哈希长度错误
	FromHash160(prefix byte, h160 []byte, net types.NetworkParams) (string, error)

	// ToHash160 解码传统地址
	//
	// Base58Check解码后按注册表反向解析版本字节归属。
	//
	// 参数：
	//   - addr: Base58Check地址文本
	//
	// 返回：
	//   - types.DecodedAddress: 版本字节、哈希与归属网络
	//   - error: 编码损坏或前缀未注册
	ToHash160(addr string) (types.DecodedAddress, error)

	// FromWitness 从见证程序构造隔离见证地址
	//
	// 版本0使用Bech32校验和，版本1及以上使用Bech32m。
	FromWitness(version int, program []byte, net types.NetworkParams) (string, error)

	// ToWitness 解码隔离见证地址
	//
	// 接受全部在册版本（0..16）；不处理某版本的上层自行拒绝。
	ToWitness(addr string) (types.WitnessProgram, error)

	// FromV0WitnessProgram 构造版本0见证程序的p2sh包裹地址
	//
	// 赎回脚本为 OP_0 <program> 的序列化形式，对其做HASH160后
	// 以 p2sh 前缀编码。
	FromV0WitnessProgram(program []byte, net types.NetworkParams) (string, error)

	// P2PKH 从公钥推导p2pkh地址
	//
	// 接受33字节压缩或65字节非压缩公钥，按给定形态做HASH160。
	P2PKH(pubKey []byte, net types.NetworkParams) (string, error)

	// P2SH 从赎回脚本推导p2sh地址
	P2SH(redeemScript []byte, net types.NetworkParams) (string, error)

	// P2WPKH 从公钥推导p2wpkh地址
	//
	// 隔离见证程序只承诺压缩公钥，非压缩公钥一律拒绝。
	P2WPKH(pubKey []byte, net types.NetworkParams) (string, error)

	// P2WSH 从见证脚本推导p2wsh地址
	P2WSH(witnessScript []byte, net types.NetworkParams) (string, error)

	// P2WPKHP2SH 从公钥推导p2sh包裹的p2wpkh地址
	//
	// 与 P2WPKH 相同，只接受压缩公钥。
	P2WPKHP2SH(pubKey []byte, net types.NetworkParams) (string, error)

	// P2WSHP2SH 从见证脚本推导p2sh包裹的p2wsh地址
	P2WSHP2SH(witnessScript []byte, net types.NetworkParams) (string, error)

	// FromScriptPubKey 从锁定脚本推导规范地址
	//
	// p2pkh/p2sh 产出Base58Check地址，p2wpkh/p2wsh 产出Bech32地址；
	// 其余类型没有规范地址，返回空字符串。
	FromScriptPubKey(script []byte, net types.NetworkParams) (string, error)

	// ToScriptPubKey 从地址反推锁定脚本
	//
	// 带隔离见证前缀的地址走见证路径（版本0以上返回不支持），
	// 其余走Base58Check路径。同时返回地址归属的网络。
	ToScriptPubKey(addr string) ([]byte, *types.NetworkParams, error)

	// AddressList 枚举锁定脚本关联的全部地址
	//
	// p2ms 返回每个内嵌公钥的p2pkh地址；可寻址类型返回单元素
	// 列表；其余返回空列表。
	AddressList(script []byte, net types.NetworkParams) ([]string, error)
}

// WIFCodec 定义WIF私钥编解码接口
type WIFCodec interface {
	// Encode 将私钥标量编码为WIF文本
	//
	// 标量必须在 [1, n-1] 区间内；compressed 控制是否追加
	// 压缩标记字节。
	//
	// 参数：
	//   - key: 32字节大端私钥标量
	//   - net: 目标网络参数
	//   - compressed: 对应公钥是否使用压缩编码
	//
	// 返回：
	//   - string: WIF文本
	//   - error: 标量越界或长度错误
	Encode(key []byte, net types.NetworkParams, compressed bool) (string, error)

	// Decode 解码WIF文本
	//
	// 版本字节按注册表反向解析；载荷长度区分压缩与非压缩形态；
	// 标量重新做区间检查。
	Decode(wif string) (types.PrivateKeyInfo, error)
}

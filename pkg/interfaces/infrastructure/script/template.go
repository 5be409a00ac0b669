// Package script 提供锁定脚本的模板识别与构造接口定义
//
// 📍 **锁定脚本模板引擎 (ScriptPubKey Template Engine)**
//
// 本文件定义了锁定脚本的模板层接口，专注于：
// - 模板分类：在封闭类型集合上的保守结构匹配
// - 模板构造：从载荷正向构造规范脚本字节
// - 结构断言：针对单一模板的细粒度规则检查
// - 失败关闭：任何偏离模板的脚本一律归入 unknown
//
// 🎯 **核心功能**
// - TemplateEngine：模板分类与构造接口
// - 八类封闭集合：p2pk/p2pkh/p2sh/p2wpkh/p2wsh/p2ms/nulldata/unknown
//
// 🏗️ **设计原则**
// - 分类绝不猜测：近似匹配（长度差一、标记错位）不归类
// - 构造绝不截断：载荷越界返回错误而非静默修正
// - 原样保留：非标准脚本字节在 unknown 载荷中原样携带
package script

import "github.com/weisyn/scriptkit/pkg/types"

// TemplateEngine 定义锁定脚本模板引擎接口
type TemplateEngine interface {
	// Classify 对锁定脚本做模板分类
	//
	// 按固定优先级匹配标准模板，全部不匹配时返回 unknown
	// 且载荷为完整脚本字节。空脚本是唯一的错误输入。
	//
	// 参数：
	//   - script: 锁定脚本字节
	//
	// 返回：
	//   - types.PayloadInfo: 类型与对应载荷
	//   - error: 空脚本错误
	Classify(script []byte) (types.PayloadInfo, error)

	// Assert 断言脚本满足指定模板的全部结构规则
	//
	// 与 Classify 不同，失败时返回指明违反规则的类型化错误，
	// 用于需要精确诊断的调用方。
	Assert(scriptType types.ScriptType, script []byte) error

	// PayToPubKey 构造公钥直付脚本：<pub_key> OP_CHECKSIG
	//
	// 公钥须为可解析的33或65字节SEC编码。
	PayToPubKey(pubKey []byte) ([]byte, error)

	// PayToPubKeyHash 构造公钥哈希支付脚本
	//
	// 输入为20字节时直接作为哈希使用，否则按公钥解析并做HASH160。
	PayToPubKeyHash(pubKeyOrHash []byte) ([]byte, error)

	// PayToScriptHash 构造脚本哈希支付脚本
	//
	// 输入为20字节时直接作为哈希使用，否则对赎回脚本做HASH160。
	PayToScriptHash(redeemOrHash []byte) ([]byte, error)

	// PayToWitnessPubKeyHash 构造隔离见证公钥哈希脚本：OP_0 <20字节>
	//
	// 公钥输入必须为压缩编码。
	PayToWitnessPubKeyHash(pubKeyOrHash []byte) ([]byte, error)

	// PayToWitnessScriptHash 构造隔离见证脚本哈希脚本：OP_0 <32字节>
	//
	// 输入为32字节时直接作为哈希使用，否则对见证脚本做SHA256。
	PayToWitnessScriptHash(scriptOrHash []byte) ([]byte, error)

	// MultiSig 构造裸多签脚本：OP_m <keys...> OP_n OP_CHECKMULTISIG
	//
	// 要求 1 ≤ m ≤ n ≤ 16，每个公钥长度为33或65字节。
	// lexSort 为真时按字节序对公钥排序后再构造。
	MultiSig(m int, pubKeys [][]byte, lexSort bool) ([]byte, error)

	// NullData 构造数据承载脚本：OP_RETURN <data>
	//
	// 数据长度不得超过80字节。
	NullData(data []byte) ([]byte, error)

	// FromTypeAndPayload 从分类载荷反向构造脚本
	//
	// 载荷语义与 Classify 的输出一致；p2ms 载荷会重新做结构校验。
	// unknown 或未定义类型返回不支持的特性错误。
	FromTypeAndPayload(scriptType types.ScriptType, payload []byte) ([]byte, error)
}

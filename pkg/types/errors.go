package types

import "errors"

// 脚本与地址层的错误分类
// 全部失败归入四类哨兵，调用方使用 errors.Is 区分处理：
//   - 编码损坏：文本或字节层面无法解出（非法字符、校验和不符、截断）
//   - 结构无效：解出但不满足模板规则（长度、标记字节、数值范围）
//   - 未知网络或前缀：版本字节、HRP 未在注册表中
//   - 不支持的特性：结构可识别但本层不处理（如高版本见证程序转脚本）
var (
	// ErrMalformedEncoding 编码损坏错误
	ErrMalformedEncoding = errors.New("malformed encoding")

	// ErrInvalidStructure 结构无效错误
	ErrInvalidStructure = errors.New("invalid structure")

	// ErrUnknownNetworkOrPrefix 未知网络或前缀错误
	ErrUnknownNetworkOrPrefix = errors.New("unknown network or prefix")

	// ErrUnsupportedFeature 不支持的特性错误
	ErrUnsupportedFeature = errors.New("unsupported feature")
)

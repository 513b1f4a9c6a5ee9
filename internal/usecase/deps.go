package usecase

import (
	"context"
	"time"
)

// usecaseに渡す部品（mainで実体を差す）

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// 生成AI呼び出し。失敗してもエラーは返さずフォールバック文言を返す約束。
type TextGenerator interface {
	DescribeDish(ctx context.Context, dishName string) string
	AnalyzeSales(ctx context.Context, summary string) string
}

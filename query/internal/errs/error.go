package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTable 终结方法都要求先调用 Table 指定目标表
	ErrNoTable = errors.New("fluentdb: no table specified")

	// ErrNoWhere guards against accidental full-table mutation.
	// UPDATE 和 DELETE 必须带至少一个 WHERE 条件
	ErrNoWhere = errors.New("fluentdb: refusing to run UPDATE/DELETE without a WHERE clause")

	// ErrEmptyPayload INSERT/UPDATE 不允许空数据
	ErrEmptyPayload = errors.New("fluentdb: empty insert/update payload")
)

// NewErrInvalidLimit returns an error for a negative LIMIT value.
func NewErrInvalidLimit(n int) error {
	return fmt.Errorf("fluentdb: invalid LIMIT %d, must be >= 0", n)
}

// NewErrInvalidOffset returns an error for a negative OFFSET value.
func NewErrInvalidOffset(n int) error {
	return fmt.Errorf("fluentdb: invalid OFFSET %d, must be >= 0", n)
}

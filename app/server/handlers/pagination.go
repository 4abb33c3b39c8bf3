package handlers

import "strconv"

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

// parsePagination 解析 skip 与 limit 查询参数，空值使用默认值
func (a *App) parsePagination(skipStr, limitStr string) (skip int, limit int, err error) {
	if skipStr != "" {
		if skip, err = strconv.Atoi(skipStr); err != nil {
			return 0, 0, err
		}
	}
	if skip < 0 {
		skip = 0
	}

	if limitStr != "" {
		if limit, err = strconv.Atoi(limitStr); err != nil {
			return 0, 0, err
		}
	}
	if limit <= 0 {
		limit = defaultPageLimit
	} else if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return skip, limit, nil
}

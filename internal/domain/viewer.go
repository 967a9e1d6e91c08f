package domain

// Viewer 是当前登录查看日程的用户，资料来自配置而不是数据库，
// 真正的用户体系由外部系统负责
type Viewer struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

package employee

import "time"

// Employee は従業員エンティティです。テナント単位で管理され、
// Version は楽観ロック用のカウンタとしてストアが更新のたびに進めます。
type Employee struct {
	ID        string
	Version   int64
	TenantID  int64
	Name      string
	Contract  *Contract
	Skills    []Skill
	ShortID   string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Skill は従業員が保有するスキルへの参照です。
type Skill struct {
	ID       string
	TenantID int64
	Name     string
}

// Contract は従業員に割り当てられた契約への参照です。
// インポートでは上書きされず、ストア側の値が常に維持されます。
type Contract struct {
	ID       string
	TenantID int64
	Name     string
}

// EmployeeView は従業員の境界表現です。ID が nil の場合は新規作成、
// 非 nil の場合は既存レコードの更新入力として扱われます。
type EmployeeView struct {
	ID       *string
	Version  int64
	TenantID int64
	Name     string
	Contract *Contract
	Skills   []Skill
	ShortID  string
	Color    string
}

func cloneSkills(skills []Skill) []Skill {
	if skills == nil {
		return nil
	}
	cloned := make([]Skill, len(skills))
	copy(cloned, skills)
	return cloned
}

func cloneContract(c *Contract) *Contract {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

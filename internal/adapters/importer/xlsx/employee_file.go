package xlsx

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rsynek/optaweb-employee-rostering/internal/core/employee"
	"github.com/xuri/excelize/v2"
)

// 期待するワークブック形式: 先頭シート、一行目がヘッダ
// (Name | Short ID | Color | Skills)、Skills はセミコロン区切りのスキル名。
const (
	nameColumn    = 0
	shortIDColumn = 1
	colorColumn   = 2
	skillsColumn  = 3
)

// EmployeeListFileIO は Excel ワークブックから従業員ビューを読み取る
// ImportSource 実装です。スキル名はテナントのスキル参照データで解決され、
// 解決できない名前は読み飛ばされます。
type EmployeeListFileIO struct {
	skills employee.SkillRepository
}

// NewEmployeeListFileIO は EmployeeListFileIO を生成します。
func NewEmployeeListFileIO(skills employee.SkillRepository) *EmployeeListFileIO {
	return &EmployeeListFileIO{skills: skills}
}

// ReadEmployees はワークブックを解析して従業員ビューの列を返します。
// 解釈できない入力は employee.ErrImportFormat で失敗し、
// その場合は一件も永続化されません。
func (f *EmployeeListFileIO) ReadEmployees(ctx context.Context, tenantID int64, r io.Reader) ([]employee.EmployeeView, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %v: %w", err, employee.ErrImportFormat)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets: %w", employee.ErrImportFormat)
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %v: %w", sheet, err, employee.ErrImportFormat)
	}
	if len(rows) == 0 || !strings.EqualFold(strings.TrimSpace(cell(rows[0], nameColumn)), "Name") {
		return nil, fmt.Errorf("missing header row: %w", employee.ErrImportFormat)
	}

	byName, err := f.skillsByName(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	views := make([]employee.EmployeeView, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cell(row, nameColumn))
		if name == "" {
			continue
		}

		views = append(views, employee.EmployeeView{
			TenantID: tenantID,
			Name:     name,
			ShortID:  strings.TrimSpace(cell(row, shortIDColumn)),
			Color:    strings.TrimSpace(cell(row, colorColumn)),
			Skills:   resolveSkills(cell(row, skillsColumn), byName),
		})
	}
	return views, nil
}

func (f *EmployeeListFileIO) skillsByName(ctx context.Context, tenantID int64) (map[string]employee.Skill, error) {
	skills, err := f.skills.FindAllByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]employee.Skill, len(skills))
	for _, skill := range skills {
		byName[strings.ToLower(skill.Name)] = skill
	}
	return byName, nil
}

func resolveSkills(raw string, byName map[string]employee.Skill) []employee.Skill {
	var resolved []employee.Skill
	for _, name := range strings.Split(raw, ";") {
		trimmed := strings.ToLower(strings.TrimSpace(name))
		if trimmed == "" {
			continue
		}
		if skill, ok := byName[trimmed]; ok {
			resolved = append(resolved, skill)
		}
	}
	return resolved
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

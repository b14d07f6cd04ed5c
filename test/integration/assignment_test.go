// ============================================================================
// Shift-Roster 配置測試套件
// ============================================================================
//
// Package: test/integration
// 文件: assignment_test.go
// 功能: 端到端人員配置功能測試
//
// 測試目標:
//   驗證整條配置管線在真實場景下的行為：
//   1. 輸入記錄正確建構為人員實體
//   2. 非法欄位被靜默修正且可由讀回值觀測
//   3. 班別閘門與編制上限按順序生效
//   4. 獎金在配置完成後正確發放
//   5. 報表逐行符合固定格式
//
// 測試場景:
//   採用標準三班別場景：
//   - 3 位主管（NIGHT 容量 3、DAY 容量 5、SWING 容量 5）
//   - 10 位作業員，其中 3 筆時薪超標（30、40、21 > 20）
//   - 分組指派：每位主管只收到自己班別的名單
//
// 預期結果:
//   - 收編 10 人、零班別不符、零拒絕
//   - 3 筆時薪修正為 $1
//   - DAY 主管帶 5 人，獲得 $10000 獎金（71690 → 81690）
//
// ============================================================================

package integration

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChuLiYu/shift-roster/internal/assignment"
	"github.com/ChuLiYu/shift-roster/internal/metrics"
	"github.com/ChuLiYu/shift-roster/internal/staff"
	"github.com/ChuLiYu/shift-roster/pkg/types"
)

// referencePlan 標準三班別場景
func referencePlan() assignment.Plan {
	return assignment.Plan{
		Supervisors: []assignment.SupervisorSpec{
			{Name: "Zach Mccall", ID: 2566, Salary: 68590, Shift: types.ShiftNight, Capacity: 3},
			{Name: "Helena Navarro", ID: 6456, Salary: 71690, Shift: types.ShiftDay, Capacity: 5},
			{Name: "Angela Pittman", ID: 7566, Salary: 51680, Shift: types.ShiftSwing, Capacity: 5},
		},
		Workers: []assignment.WorkerSpec{
			{Name: "Marco Joseph", ID: 1340, Shift: types.ShiftNight, Rate: 20, Hours: 10},
			{Name: "Roselle Lambert", ID: 6456, Shift: types.ShiftNight, Rate: 13, Hours: 35},
			{Name: "Helen Arbeny", ID: 7566, Shift: types.ShiftNight, Rate: 11, Hours: 22},
			{Name: "Vickie Mclaughlin", ID: 5854, Shift: types.ShiftDay, Rate: 20, Hours: 25},
			{Name: "Maryrose Hoffman", ID: 2131, Shift: types.ShiftDay, Rate: 30, Hours: 10},
			{Name: "Gertrude Glass", ID: 1000, Shift: types.ShiftDay, Rate: 18, Hours: 23},
			{Name: "Ines Huynh", ID: 5456, Shift: types.ShiftDay, Rate: 40, Hours: 28},
			{Name: "Sharyl Nielsen", ID: 1915, Shift: types.ShiftDay, Rate: 21, Hours: 33},
			{Name: "Chantel Cantrell", ID: 2638, Shift: types.ShiftSwing, Rate: 15, Hours: 6},
			{Name: "Andy Farrell", ID: 3416, Shift: types.ShiftSwing, Rate: 15, Hours: 5},
		},
		// 每位主管只收到自己班別的名單
		Offers: [][]int{
			{0, 1, 2},
			{3, 4, 5, 6, 7},
			{8, 9},
		},
	}
}

func TestEndToEndAssignment(t *testing.T) {
	// 重置 Prometheus registry 以掛上完整的指標收集器
	prometheus.DefaultRegisterer = prometheus.NewRegistry()
	collector := metrics.NewCollector()

	engine := assignment.New(assignment.Config{Metrics: collector})

	result, err := engine.Run(context.Background(), referencePlan())
	require.NoError(t, err)
	require.NotNil(t, result)

	// 全部收編，零拒絕
	require.Equal(t, 10, result.Assigned, "應收編 10 位作業員")
	require.Equal(t, 0, result.Mismatched, "分組指派不應出現班別不符")
	require.Equal(t, 0, result.Rejected, "不應有拒絕")

	// 三筆超標時薪被靜默修正
	require.Equal(t, 3, result.Corrections, "應修正 3 個欄位")

	// 每個編制的人數
	require.Len(t, result.Supervisors, 3)
	assert.Equal(t, 3, result.Supervisors[0].WorkerCount(), "NIGHT 編制應有 3 人")
	assert.Equal(t, 5, result.Supervisors[1].WorkerCount(), "DAY 編制應有 5 人")
	assert.Equal(t, 2, result.Supervisors[2].WorkerCount(), "SWING 編制應有 2 人")

	// 只有 DAY 主管帶超過 4 人，獨得獎金
	require.Equal(t, 1, result.Bonuses, "應發放 1 次獎金")
	assert.Equal(t, 81690, result.Supervisors[1].Salary(), "DAY 主管薪資應加上獎金")
	assert.Equal(t, 68590, result.Supervisors[0].Salary(), "NIGHT 主管薪資不變")
	assert.Equal(t, 51680, result.Supervisors[2].Salary(), "SWING 主管薪資不變")

	// 修正只能從讀回值觀測：Maryrose 的時薪已是 $1
	maryrose := result.Workers[4]
	assert.Equal(t, "Maryrose Hoffman", maryrose.Name())
	assert.Equal(t, 1, maryrose.Rate(), "超標時薪應修正為 $1")
	assert.Equal(t, 10, maryrose.GrossPay(), "週薪按修正後時薪計算")
}

func TestReportFormat(t *testing.T) {
	engine := assignment.New(assignment.Config{})

	result, err := engine.Run(context.Background(), referencePlan())
	require.NoError(t, err)
	require.Len(t, result.Reports, 3)

	// NIGHT 主管報表逐行驗證
	want := "Zach Mccall | ID #: 2566 | (*Benefits)\n" +
		"Title: Shift Supervisor\n" +
		"Annual Salary $68590\n" +
		"Shift: NIGHT\n" +
		"3 workers in their shift\n" +
		"\n" +
		"Workers 1\n" +
		"Marco Joseph | ID #: 1340 | (*Benefits)\n" +
		"Title: Production Worker\n" +
		"Shift: NIGHT\n" +
		"Wage: $20 /hr\n" +
		"Hours Worked: 10 hrs this week\n" +
		"Gross Pay: $200\n" +
		"\n" +
		"Workers 2\n" +
		"Roselle Lambert | ID #: 6456 | (*No Benefits)\n" +
		"Title: Production Worker\n" +
		"Shift: NIGHT\n" +
		"Wage: $13 /hr\n" +
		"Hours Worked: 35 hrs this week\n" +
		"Gross Pay: $455\n" +
		"\n" +
		"Workers 3\n" +
		"Helen Arbeny | ID #: 7566 | (*No Benefits)\n" +
		"Title: Production Worker\n" +
		"Shift: NIGHT\n" +
		"Wage: $11 /hr\n" +
		"Hours Worked: 22 hrs this week\n" +
		"Gross Pay: $242"

	require.Equal(t, want, result.Reports[0], "NIGHT 主管報表格式應完全一致")

	// DAY 主管報表包含獎金後薪資與修正後時薪
	assert.Contains(t, result.Reports[1], "Annual Salary $81690", "報表應顯示獎金後薪資")
	assert.Contains(t, result.Reports[1], "5 workers in their shift")
	assert.Contains(t, result.Reports[1], "Wage: $1 /hr", "報表應顯示修正後時薪")
}

func TestSilentCorrectionObservability(t *testing.T) {
	// 全部欄位非法的記錄：建構不報錯，只能靠讀回值發現修正
	plan := assignment.Plan{
		Supervisors: []assignment.SupervisorSpec{
			{Name: "999", ID: 1, Salary: 1, Shift: types.Shift(99), Capacity: -1},
		},
		Workers: []assignment.WorkerSpec{
			{Name: "", ID: 0, Shift: types.Shift(0), Rate: 999, Hours: 999},
		},
	}

	engine := assignment.New(assignment.Config{})

	result, err := engine.Run(context.Background(), plan)
	require.NoError(t, err, "非法欄位不應造成錯誤")

	// 主管 5 欄 + 作業員 5 欄
	require.Equal(t, 10, result.Corrections)

	s := result.Supervisors[0]
	assert.Equal(t, "unidentified", s.Name())
	assert.Equal(t, 1234, s.ID())
	assert.True(t, s.HasBenefits(), "修正後的 ID 1234 低於 5000，反而取得福利")
	assert.Equal(t, 50000, s.Salary())
	assert.Equal(t, types.ShiftDay, s.Shift())
	assert.Equal(t, 10, s.Capacity())

	w := result.Workers[0]
	assert.Equal(t, "unidentified", w.Name())
	assert.Equal(t, 0, w.GrossPay(), "修正後時薪 $1、工時 0，週薪為 0")

	// 兩者都被修正到 DAY 班別，作業員因此被收編
	require.Equal(t, 1, result.Assigned)
}

func TestRosterFullBothModes(t *testing.T) {
	plan := assignment.Plan{
		Supervisors: []assignment.SupervisorSpec{
			{Name: "Zach Mccall", ID: 2566, Salary: 68590, Shift: types.ShiftNight, Capacity: 2},
		},
		Workers: []assignment.WorkerSpec{
			{Name: "Marco Joseph", ID: 1340, Shift: types.ShiftNight, Rate: 20, Hours: 10},
			{Name: "Roselle Lambert", ID: 6456, Shift: types.ShiftNight, Rate: 13, Hours: 35},
			{Name: "Helen Arbeny", ID: 7566, Shift: types.ShiftNight, Rate: 11, Hours: 22},
		},
	}

	t.Run("預設額滿即中止", func(t *testing.T) {
		engine := assignment.New(assignment.Config{})

		result, err := engine.Run(context.Background(), plan)
		require.Error(t, err, "額滿應中止整趟執行")
		require.ErrorIs(t, err, staff.ErrRosterFull, "錯誤應可用 errors.Is 判別")
		require.Nil(t, result)
	})

	t.Run("設定後記數並繼續", func(t *testing.T) {
		engine := assignment.New(assignment.Config{ContinueOnFull: true})

		result, err := engine.Run(context.Background(), plan)
		require.NoError(t, err)
		require.Equal(t, 2, result.Assigned, "前兩位應收編成功")
		require.Equal(t, 1, result.Rejected, "第三位應被記為拒絕")
		require.Equal(t, 2, result.Supervisors[0].WorkerCount())
	})
}

func TestMismatchNeverRejected(t *testing.T) {
	// 班別閘門先於容量閘門：滿編後收到錯班別的指派仍是靜默忽略
	plan := assignment.Plan{
		Supervisors: []assignment.SupervisorSpec{
			{Name: "Zach Mccall", ID: 2566, Salary: 68590, Shift: types.ShiftNight, Capacity: 1},
		},
		Workers: []assignment.WorkerSpec{
			{Name: "Marco Joseph", ID: 1340, Shift: types.ShiftNight, Rate: 20, Hours: 10},
			{Name: "Vickie Mclaughlin", ID: 5854, Shift: types.ShiftDay, Rate: 20, Hours: 25},
		},
	}

	// 即使是預設的額滿中止模式，也不應出現錯誤
	engine := assignment.New(assignment.Config{})

	result, err := engine.Run(context.Background(), plan)
	require.NoError(t, err, "錯班別的指派不應觸發額滿錯誤")
	require.Equal(t, 1, result.Assigned)
	require.Equal(t, 1, result.Mismatched)
	require.Equal(t, 0, result.Rejected)
}

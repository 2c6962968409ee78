package repository

import (
	"time"

	"leave-management-backend/internal/model"

	"gorm.io/gorm"
)

type AnalyticsRepository interface {
	GetAdminAnalytics(now time.Time) (map[string]interface{}, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db}
}

type groupCount struct {
	Label string
	Count int64
}

// GetAdminAnalytics assembles the admin dashboard numbers. Everything is a
// plain grouped count except the leave trend, which is bucketed in Go to keep
// the query dialect-neutral.
func (r *analyticsRepository) GetAdminAnalytics(now time.Time) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var totalUsers int64
	if err := r.db.Model(&model.User{}).Where("is_active = ?", true).Count(&totalUsers).Error; err != nil {
		return nil, err
	}

	usersByRole, err := r.groupUsers("role")
	if err != nil {
		return nil, err
	}
	usersByDepartment, err := r.groupUsers("department")
	if err != nil {
		return nil, err
	}

	var totalLeaves int64
	if err := r.db.Model(&model.LeaveRequest{}).Count(&totalLeaves).Error; err != nil {
		return nil, err
	}

	leavesByStatus, err := r.groupLeaves("status")
	if err != nil {
		return nil, err
	}
	leavesByType, err := r.groupLeaves("leave_type")
	if err != nil {
		return nil, err
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var currentMonthLeaves int64
	if err := r.db.Model(&model.LeaveRequest{}).
		Where("created_at >= ?", startOfMonth).
		Count(&currentMonthLeaves).Error; err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	var onLeaveToday int64
	if err := r.db.Model(&model.LeaveRequest{}).
		Where("status = ? AND start_date < ? AND end_date >= ?", model.LeaveStatusApproved, tomorrow, today).
		Count(&onLeaveToday).Error; err != nil {
		return nil, err
	}

	var avgDuration float64
	if err := r.db.Model(&model.LeaveRequest{}).
		Select("COALESCE(AVG(total_days), 0)").
		Scan(&avgDuration).Error; err != nil {
		return nil, err
	}

	trend, err := r.leaveTrend(now)
	if err != nil {
		return nil, err
	}

	topDepartments, err := r.topDepartments(5)
	if err != nil {
		return nil, err
	}

	stats["overview"] = map[string]interface{}{
		"totalUsers":         totalUsers,
		"inOffice":           totalUsers - onLeaveToday,
		"onLeaveToday":       onLeaveToday,
		"totalLeaves":        totalLeaves,
		"currentMonthLeaves": currentMonthLeaves,
		"avgLeaveDuration":   avgDuration,
	}
	stats["usersByRole"] = usersByRole
	stats["usersByDepartment"] = usersByDepartment
	stats["leavesByStatus"] = leavesByStatus
	stats["leavesByType"] = leavesByType
	stats["leaveTrend"] = trend
	stats["topDepartments"] = topDepartments

	return stats, nil
}

func (r *analyticsRepository) groupUsers(column string) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.Model(&model.User{}).
		Where("is_active = ?", true).
		Select(column + " as label, count(*) as count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Label] = row.Count
	}
	return out, nil
}

func (r *analyticsRepository) groupLeaves(column string) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.Model(&model.LeaveRequest{}).
		Select(column + " as label, count(*) as count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Label] = row.Count
	}
	return out, nil
}

// leaveTrend counts requests per calendar month over the last six months.
func (r *analyticsRepository) leaveTrend(now time.Time) ([]map[string]interface{}, error) {
	sixMonthsAgo := now.AddDate(0, -6, 0)

	var createdAts []time.Time
	if err := r.db.Model(&model.LeaveRequest{}).
		Where("created_at >= ?", sixMonthsAgo).
		Order("created_at asc").
		Pluck("created_at", &createdAts).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	var months []string
	for _, ts := range createdAts {
		month := ts.Format("2006-01")
		if _, seen := counts[month]; !seen {
			months = append(months, month)
		}
		counts[month]++
	}

	trend := make([]map[string]interface{}, 0, len(months))
	for _, month := range months {
		trend = append(trend, map[string]interface{}{
			"month": month,
			"count": counts[month],
		})
	}
	return trend, nil
}

func (r *analyticsRepository) topDepartments(limit int) ([]map[string]interface{}, error) {
	var rows []struct {
		Department string
		Count      int64
	}
	err := r.db.Model(&model.LeaveRequest{}).
		Joins("JOIN users ON users.id = leave_requests.employee_id").
		Select("users.department as department, count(*) as count").
		Group("users.department").
		Order("count desc").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		out = append(out, map[string]interface{}{
			"department": row.Department,
			"count":      row.Count,
		})
	}
	return out, nil
}

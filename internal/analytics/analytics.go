// Package analytics assembles the overview page: KPI cards computed from the
// live workspace plus the static traffic, revenue and activity series.
package analytics

import (
	"html/template"

	"github.com/samber/lo"

	"github.com/odyssey-erp/odyssey-admin/internal/analytics/chart"
	"github.com/odyssey-erp/odyssey-admin/internal/orders"
	"github.com/odyssey-erp/odyssey-admin/internal/products"
	"github.com/odyssey-erp/odyssey-admin/internal/users"
)

// Point is one bar of a chart. Percent is relative to the series maximum.
type Point struct {
	Label   string
	Value   float64
	Percent int
}

// Activity is one entry of the recent activity feed.
type Activity struct {
	ID      int64
	Type    string
	Message string
	Time    string
}

// Inputs are the live figures the KPI cards summarise.
type Inputs struct {
	Users    users.Stats
	Orders   orders.Stats
	Products products.Stats
	Unread   int
}

// Dashboard is everything the analytics page renders.
type Dashboard struct {
	Inputs
	Revenue  []Point
	Traffic  []Point
	Devices  []Point
	Activity []Activity

	TrafficChart template.HTML
	RevenueChart template.HTML
}

var quarterlyRevenue = []Point{
	{Label: "Q1", Value: 18000},
	{Label: "Q2", Value: 22000},
	{Label: "Q3", Value: 27500},
	{Label: "Q4", Value: 32000},
}

var weeklyVisits = []Point{
	{Label: "Mon", Value: 1200},
	{Label: "Tue", Value: 1800},
	{Label: "Wed", Value: 1500},
	{Label: "Thu", Value: 2100},
	{Label: "Fri", Value: 2600},
	{Label: "Sat", Value: 1900},
	{Label: "Sun", Value: 1300},
}

var deviceShare = []Point{
	{Label: "Desktop", Value: 55},
	{Label: "Mobile", Value: 35},
	{Label: "Tablet", Value: 10},
}

var recentActivity = []Activity{
	{ID: 1, Type: "user_created", Message: "New user Ahmed Ali created", Time: "5 min ago"},
	{ID: 2, Type: "order_paid", Message: "Order ORD-1001 has been paid", Time: "30 min ago"},
	{ID: 3, Type: "user_suspended", Message: "User Omar Hassan was suspended", Time: "1 hour ago"},
}

// Build combines live inputs with the static series. titles label the two
// charts in the page language.
func Build(in Inputs, trafficTitle, revenueTitle string) (Dashboard, error) {
	d := Dashboard{
		Inputs:   in,
		Revenue:  scale(quarterlyRevenue),
		Traffic:  scale(weeklyVisits),
		Devices:  scale(deviceShare),
		Activity: append([]Activity(nil), recentActivity...),
	}
	var err error
	if d.TrafficChart, err = chart.Line(labels(d.Traffic), values(d.Traffic), chart.Options{Title: trafficTitle}); err != nil {
		return Dashboard{}, err
	}
	if d.RevenueChart, err = chart.Bars(labels(d.Revenue), values(d.Revenue), chart.Options{Title: revenueTitle, Color: "#16a34a"}); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}

func labels(points []Point) []string {
	return lo.Map(points, func(p Point, _ int) string { return p.Label })
}

func values(points []Point) []float64 {
	return lo.Map(points, func(p Point, _ int) float64 { return p.Value })
}

// scale fills Percent relative to the largest value.
func scale(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	top := lo.MaxBy(points, func(a, b Point) bool { return a.Value > b.Value }).Value
	return lo.Map(points, func(p Point, _ int) Point {
		if top > 0 {
			p.Percent = int(p.Value / top * 100)
		}
		return p
	})
}

package handler

import (
	"fmt"
	"time"

	"film-server/planner/internal/models"
	"film-server/planner/internal/planner"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type previewPlanRequest struct {
	StartDate string `json:"start_date,omitempty"` // YYYY-MM-DD, default tomorrow
}

type sceneResponse struct {
	ID               uuid.UUID `json:"id"`
	SceneNumber      string    `json:"scene_number"`
	Title            string    `json:"title"`
	Slugline         string    `json:"slugline"`
	IntExt           string    `json:"int_ext"`
	DayNight         string    `json:"day_night"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	Priority         int       `json:"priority"`
	Characters       []string  `json:"characters,omitempty"`
}

type plannedSceneResponse struct {
	sceneResponse
	StartTime string `json:"start_time"`
}

type dayResponse struct {
	Date            string                  `json:"date"`
	CallTime        string                  `json:"call_time"`
	LocationSummary []string                `json:"location_summary,omitempty"`
	IsGoodWeather   bool                    `json:"is_good_weather"`
	Forecast        *models.WeatherForecast `json:"forecast,omitempty"`
	Scenes          []plannedSceneResponse  `json:"scenes"`
}

type planResponse struct {
	Days            []dayResponse   `json:"days"`
	UnplannedScenes []sceneResponse `json:"unplanned_scenes,omitempty"`
}

func toSceneResponse(sc models.Scene) sceneResponse {
	return sceneResponse{
		ID:               sc.ID,
		SceneNumber:      sc.SceneNumber,
		Title:            sc.Title,
		Slugline:         sc.Slugline,
		IntExt:           string(sc.IntExt),
		DayNight:         string(sc.DayNight),
		EstimatedMinutes: sc.EstimatedMinutes,
		Priority:         sc.Priority,
		Characters:       sc.Characters,
	}
}

func toPlanResponse(result *planner.PlanResult) planResponse {
	resp := planResponse{Days: make([]dayResponse, 0, len(result.Days))}
	for _, day := range result.Days {
		dr := dayResponse{
			Date:            day.Date.Format(dateLayout),
			CallTime:        day.CallTime,
			LocationSummary: day.LocationSummary,
			IsGoodWeather:   day.IsGoodWeather,
			Forecast:        day.Forecast,
			Scenes:          make([]plannedSceneResponse, 0, len(day.Scenes)),
		}
		for i, sc := range day.Scenes {
			dr.Scenes = append(dr.Scenes, plannedSceneResponse{
				sceneResponse: toSceneResponse(sc),
				StartTime:     day.SceneTimes[i],
			})
		}
		resp.Days = append(resp.Days, dr)
	}
	for _, sc := range result.UnplannedScenes {
		resp.UnplannedScenes = append(resp.UnplannedScenes, toSceneResponse(sc))
	}
	return resp
}

type commitSceneRequest struct {
	SceneID   uuid.UUID `json:"scene_id" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
}

type commitDayRequest struct {
	Date            string                  `json:"date" binding:"required"` // YYYY-MM-DD
	CallTime        string                  `json:"call_time"`
	LocationSummary []string                `json:"location_summary"`
	IsGoodWeather   bool                    `json:"is_good_weather"`
	Forecast        *models.WeatherForecast `json:"forecast,omitempty"`
	Scenes          []commitSceneRequest    `json:"scenes" binding:"required"`
}

type commitPlanRequest struct {
	Days []commitDayRequest `json:"days" binding:"required"`
}

func (r *commitPlanRequest) toDays() ([]models.ProposedDay, error) {
	days := make([]models.ProposedDay, 0, len(r.Days))
	for i, dr := range r.Days {
		date, err := time.Parse(dateLayout, dr.Date)
		if err != nil {
			return nil, fmt.Errorf("day %d: invalid date %q", i, dr.Date)
		}
		day := models.ProposedDay{
			Date:            date,
			CallTime:        dr.CallTime,
			LocationSummary: dr.LocationSummary,
			IsGoodWeather:   dr.IsGoodWeather,
			Forecast:        dr.Forecast,
		}
		for _, sr := range dr.Scenes {
			day.Scenes = append(day.Scenes, models.Scene{ID: sr.SceneID})
			day.SceneTimes = append(day.SceneTimes, sr.StartTime)
		}
		days = append(days, day)
	}
	return days, nil
}

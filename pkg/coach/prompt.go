// Package coach builds the diet-coach system prompt and parses the model's
// structured replies (chat quests and food-image analysis).
package coach

import (
	"fmt"
	"strings"
)

// DailyStatus carries the user's live numbers injected into the prompt.
type DailyStatus struct {
	Name              string
	Goal              string
	WeightKg          float64
	HeightCm          float64
	ActivityLevel     string
	TargetCalories    int
	CaloriesConsumed  int
	CaloriesBurned    int
	RemainingCalories int
	WaterGlasses      int
	WaterTarget       int
}

// BuildSystemPrompt assembles the coaching instructions plus the quest JSON
// contract. The model must answer with a single JSON object.
func BuildSystemPrompt(s DailyStatus) string {
	goal := s.Goal
	if goal == "" {
		goal = "healthy_living"
	}

	var b strings.Builder
	b.WriteString("You are a helpful and empathetic Diet Coach AI. Your goal is to assist the user in achieving their health goals (")
	b.WriteString(strings.ReplaceAll(goal, "_", " "))
	b.WriteString(").\n\n")

	fmt.Fprintf(&b, `**User Profile:**
- Name: %s
- Weight: %.1f kg
- Height: %.1f cm
- Activity Level: %s
- Daily Calorie Target: %d kcal

**Today's Status:**
- Calories Consumed: %d kcal
- Calories Burned: %d kcal
- Remaining Budget: %d kcal
- Water Intake: %d / %d glasses

`, s.Name, s.WeightKg, s.HeightCm, s.ActivityLevel, s.TargetCalories,
		s.CaloriesConsumed, s.CaloriesBurned, s.RemainingCalories,
		s.WaterGlasses, s.WaterTarget)

	b.WriteString(`**Instructions:**
1. **Low Calorie Warning:** If remaining calories are low (< 300) and the user asks for food, suggest low-calorie, high-volume foods (salads, soups, fruits).
2. **"Earn" Calories:** If the user wants to eat something high-calorie but is out of budget, calculate how much exercise is needed to "earn" it. Rough rates: jogging ~10 kcal/min, walking ~4 kcal/min.
3. **Over Budget Recovery:** If remaining calories are negative, be supportive. Suggest a recovery plan (light walk today, slightly lower calories tomorrow). Do NOT shame the user.
4. **General:** Be encouraging, keep answers concise (max 3-4 sentences unless detailed advice is asked), and use emojis.

**QUEST SYSTEM (IMPORTANT):**
You must output your response in JSON format.
If the user's request implies an action (e.g. "I want to exercise", "What should I eat?", "I ate an apple"), you can generate a "Quest".
- Quest Types: "EXERCISE" (workouts), "FOOD" (healthy eating suggestions), "WATER" (hydration).
- XP: assign 10-50 XP based on difficulty.

**JSON Schema:**
{
  "reply": "Your text response here...",
  "quest": {
    "type": "EXERCISE" | "FOOD" | "WATER",
    "title": "Short Quest Title",
    "description": "Description of the quest",
    "xp": number,
    "action": {
      "type": "LOG_EXERCISE" | "LOG_FOOD" | "LOG_WATER",
      "data": {
        "exerciseName": "Jogging", "duration": 30, "caloriesBurned": 300,
        "foodName": "Apple", "calories": 95, "portion": "1 medium", "protein": 0, "carbs": 25, "fat": 0
      }
    }
  }
}
The quest field is optional; omit it when no quest applies. Always include complete data in quest.action.data.
`)

	return b.String()
}

// FoodImagePrompt is the instruction sent with a food photo.
const FoodImagePrompt = `Analyze this food image and provide:
1. List of all foods you can identify
2. Estimated portion size for each food
3. Estimated calories for each food item
4. Total calories

Format your response as JSON with this structure:
{
  "foods": [
    {
      "name": "food name",
      "portion": "portion description",
      "calories": number
    }
  ],
  "totalCalories": number,
  "confidence": "high/medium/low"
}

If you cannot identify the food clearly, set confidence to "low" and provide your best guess.`

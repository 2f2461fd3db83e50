package idea

const imageBase = "https://cdn.poehali.dev/projects/14e4722d-3d0b-4eff-b770-bd2d7db820d9/files/"

// Seed returns the built-in idea set. A fresh slice is returned on every call.
func Seed() []Idea {
	return []Idea{
		{
			ID:          "1",
			ImageURL:    imageBase + "a6fd9309-1c5c-4cd0-bcfe-a83c0d6d0245.jpg",
			Description: "Минималистичный обеденный стол из массива дуба с коническими ножками",
			Tags: Tags{
				TagProductType: {"Стол"},
				TagTechnique:   {"Шиповое соединение"},
				TagMaterial:    {"Дуб", "Массив"},
			},
			Status: StatusProcessed,
		},
		{
			ID:          "2",
			ImageURL:    imageBase + "8ed24d04-c302-4a95-8b89-cc70d07a706c.jpg",
			Description: "Детали японских соединений без использования крепежа",
			Tags: Tags{
				TagProductType: {"Элемент"},
				TagTechnique:   {"Японские соединения", "Mortise & Tenon"},
				TagMaterial:    {"Дуб"},
			},
			Status: StatusProcessed,
		},
		{
			ID:          "3",
			ImageURL:    imageBase + "399612b2-bd49-4676-a05d-41a602e5b369.jpg",
			Description: "Эскиз стула в скандинавском стиле с элегантной спинкой",
			Tags: Tags{
				TagProductType: {"Стул"},
				TagTechnique:   {"Гнутье"},
				TagMaterial:    {"Ясень"},
			},
			Status: StatusInbox,
		},
	}
}

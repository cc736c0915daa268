package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"artigadental/config"
	"artigadental/database"
	"artigadental/models"
)

// Seeds the posts collection with the launch articles so the blog has
// content before the first admin login.
func main() {
	config.LoadConfig()
	database.InitDB()
	coll := database.Collection("posts")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear posts collection: %v", err)
	}

	now := time.Now().UTC()
	seed := []struct {
		title, slug, excerpt, imageURL string
		ageDays                        int
	}{
		{
			title:    "10 Consejos para una Sonrisa Radiante",
			slug:     "consejos-sonrisa-radiante",
			excerpt:  "Descubre los secretos para mantener tus dientes blancos y saludables con estos simples hábitos diarios.",
			imageURL: "https://images.unsplash.com/photo-1588776814546-1ffcf47267a5?auto=format&fit=crop&q=80&w=800",
			ageDays:  0,
		},
		{
			title:    "¿Por qué sangran mis encías?",
			slug:     "por-que-sangran-encias",
			excerpt:  "El sangrado de encías puede ser señal de problemas más serios. Aprende las causas y cómo prevenirlo.",
			imageURL: "https://images.unsplash.com/photo-1606811841689-23dfddce3e95?auto=format&fit=crop&q=80&w=800",
			ageDays:  1,
		},
		{
			title:    "La importancia del hilo dental",
			slug:     "importancia-hilo-dental",
			excerpt:  "El cepillado no es suficiente. Descubre por qué el hilo dental es crucial para tu salud bucal.",
			imageURL: "https://images.unsplash.com/photo-1609840114035-1c29046a8028?auto=format&fit=crop&q=80&w=800",
			ageDays:  2,
		},
		{
			title:    "Mitos sobre el blanqueamiento dental",
			slug:     "mitos-blanqueamiento-dental",
			excerpt:  "¿El bicarbonato funciona? ¿Daña el esmalte? Desmentimos los mitos más comunes.",
			imageURL: "https://images.unsplash.com/photo-1571772996211-2f02c9727629?auto=format&fit=crop&q=80&w=800",
			ageDays:  3,
		},
		{
			title:    "Cómo elegir el cepillo de dientes adecuado",
			slug:     "elegir-cepillo-dientes",
			excerpt:  "Suave, medio, duro, eléctrico... Te ayudamos a escoger la mejor opción para ti.",
			imageURL: "https://images.unsplash.com/photo-1559599189-fe84dea63c95?auto=format&fit=crop&q=80&w=800",
			ageDays:  4,
		},
		{
			title:    "Alimentos que manchan tus dientes",
			slug:     "alimentos-manchan-dientes",
			excerpt:  "Café, vino, salsas... Conoce los alimentos que debes consumir con moderación para cuidar el color de tu sonrisa.",
			imageURL: "https://images.unsplash.com/photo-1512058564366-18510be2db19?auto=format&fit=crop&q=80&w=800",
			ageDays:  5,
		},
	}

	var docs []interface{}
	for _, p := range seed {
		docs = append(docs, models.Post{
			ID:          uuid.New().String(),
			Title:       p.title,
			Slug:        p.slug,
			Excerpt:     p.excerpt,
			Content:     "Contenido del post...",
			ImageURL:    p.imageURL,
			IsPublished: true,
			CreatedAt:   now.AddDate(0, 0, -p.ageDays),
		})
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to seed posts: %v", err)
	}
	log.Printf("Seeded %d posts", len(docs))
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/skillswap/skillswap-cli/internal/client/models"
)

// Courses lists the catalog.
func (a *App) Courses(ctx context.Context) error {
	courses, err := a.courses.List(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(courses) == 0 {
		printlnFn("No hay cursos disponibles.")
		return nil
	}

	for _, c := range courses {
		printlnFn(fmt.Sprintf("[%s] %s — %s (%s)", c.ID, c.Name, c.Category, c.Level))
	}
	return nil
}

// Course shows the detail and preview lessons of a single course.
func (a *App) Course(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "ID del curso", os.Stdout)
	if err != nil {
		return err
	}

	course, err := a.courses.Get(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(course.Name)
	printlnFn(course.Description)
	printlnFn("Nivel:", string(course.Level), "| Categoría:", course.Category)

	preview, err := a.courses.Preview(ctx, id)
	if err == nil && len(preview.Curriculum) > 0 {
		printlnFn("Lecciones de muestra:")
		for _, l := range preview.Curriculum {
			printlnFn(" -", l.Title)
		}
	}
	return nil
}

func (a *App) promptCoursePayload(base models.CoursePayload) (models.CoursePayload, error) {
	var err error
	payload := base

	payload.Name, err = GetSimpleText(a.reader, "Nombre", os.Stdout)
	if err != nil {
		return payload, err
	}
	payload.Description, err = GetMultiline(a.reader, "Descripción", os.Stdout)
	if err != nil {
		return payload, err
	}
	payload.Category, err = GetSimpleText(a.reader, "Categoría", os.Stdout)
	if err != nil {
		return payload, err
	}
	payload.Level, err = GetSimpleText(a.reader, "Nivel (Principiante/Intermedio/Avanzado)", os.Stdout)
	if err != nil {
		return payload, err
	}
	price, err := GetSimpleText(a.reader, "Precio (0 para gratuito)", os.Stdout)
	if err != nil {
		return payload, err
	}
	if price != "" {
		payload.Price, err = strconv.ParseFloat(price, 64)
		if err != nil {
			return payload, err
		}
	}
	return payload, nil
}

// NewCourse publishes a course to the catalog.
func (a *App) NewCourse(ctx context.Context) error {
	payload, err := a.promptCoursePayload(models.CoursePayload{})
	if err != nil {
		return err
	}

	course, err := a.courses.Create(ctx, payload)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Curso creado con ID", course.ID)
	return nil
}

// EditCourse replaces the data of one of the user's courses.
func (a *App) EditCourse(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "ID del curso", os.Stdout)
	if err != nil {
		return err
	}

	payload, err := a.promptCoursePayload(models.CoursePayload{})
	if err != nil {
		return err
	}

	if err := a.courses.Update(ctx, id, payload); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Curso actualizado.")
	return nil
}

// DeleteCourse removes one of the user's courses after confirmation.
func (a *App) DeleteCourse(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "ID del curso", os.Stdout)
	if err != nil {
		return err
	}
	ok, err := GetConfirm(a.reader, "¿Seguro que quieres eliminarlo?", os.Stdout)
	if err != nil || !ok {
		return err
	}

	if err := a.courses.Delete(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Curso eliminado.")
	return nil
}
